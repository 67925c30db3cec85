package portal

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/nyayasetu/go-legalaid/apiclient"
)

// Lawyer is one entry in the verified lawyer network.
type Lawyer struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	Specialization string `json:"specialization"`
	State          string `json:"state"`
	City           string `json:"city"`
	Verified       bool   `json:"verified"`
}

// LawyerApplication is the intake form for joining the network.
type LawyerApplication struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phone_number"`
	BarRegistrationNo string `json:"bar_registration_no"`
	Specialization    string `json:"specialization"`
	YearsOfExperience int    `json:"years_of_experience"`
}

// LawyersClient wraps the lawyer network endpoints.
type LawyersClient struct {
	api *apiclient.Client
}

func NewLawyersClient(api *apiclient.Client) *LawyersClient {
	return &LawyersClient{api: api}
}

// Lawyers fetches the full lawyer list.
func (c *LawyersClient) Lawyers(ctx context.Context) ([]Lawyer, error) {
	var lawyers []Lawyer
	err := c.api.ExecuteRequest(ctx, apiclient.Request{
		Method:  http.MethodGet,
		Path:    "/lawyers/",
		RespObj: &lawyers,
	})
	if err != nil {
		return nil, err
	}
	return lawyers, nil
}

// Search fetches the lawyer list filtered by specialization client
// side, paginated. An empty specialization keeps everyone.
func (c *LawyersClient) Search(ctx context.Context, specialization string, pageNumber, perPage int) (Page[Lawyer], error) {
	lawyers, err := c.Lawyers(ctx)
	if err != nil {
		return Page[Lawyer]{}, err
	}
	return Paginate(FilterLawyers(lawyers, specialization), pageNumber, perPage), nil
}

// Apply submits a lawyer application.
func (c *LawyersClient) Apply(ctx context.Context, application LawyerApplication) error {
	if strings.TrimSpace(application.Name) == "" {
		return fmt.Errorf("applicant name is required")
	}
	if strings.TrimSpace(application.BarRegistrationNo) == "" {
		return fmt.Errorf("bar registration number is required")
	}
	return c.api.ExecuteRequest(ctx, apiclient.Request{
		Method:      http.MethodPost,
		Path:        "/lawyers/apply/",
		ReqBodyObj:  application,
		SuccessCode: http.StatusCreated,
	})
}

// FilterLawyers keeps lawyers matching the specialization; an empty
// specialization keeps everyone.
func FilterLawyers(lawyers []Lawyer, specialization string) []Lawyer {
	if strings.TrimSpace(specialization) == "" {
		return lawyers
	}
	filtered := make([]Lawyer, 0, len(lawyers))
	for _, lawyer := range lawyers {
		if strings.EqualFold(lawyer.Specialization, specialization) {
			filtered = append(filtered, lawyer)
		}
	}
	return filtered
}
