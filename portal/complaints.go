package portal

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/nyayasetu/go-legalaid/apiclient"
)

// UrgencyLevel is the ML pipeline's urgency classification.
type UrgencyLevel string

const (
	UrgencyHigh   UrgencyLevel = "high"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyLow    UrgencyLevel = "low"
)

// SectionRef is a recommended IPC section attached to an analysis.
type SectionRef struct {
	SectionNumber    string `json:"section_number"`
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
}

// Analysis is the contract of POST /complaints/analyze/.
type Analysis struct {
	PredictedUrgency    UrgencyLevel `json:"predicted_urgency"`
	PredictedCategory   string       `json:"predicted_category"`
	RecommendedSections []SectionRef `json:"recommended_sections"`
}

// Complaint is one entry in the user's complaint history.
type Complaint struct {
	ID                  int64        `json:"id"`
	ComplaintText       string       `json:"complaint_text"`
	State               string       `json:"state"`
	City                string       `json:"city"`
	DateOfIncident      string       `json:"date_of_incident"`
	PredictedUrgency    UrgencyLevel `json:"predicted_urgency"`
	PredictedCategory   string       `json:"predicted_category"`
	RecommendedSections []SectionRef `json:"recommended_sections"`
	CreatedAt           string       `json:"created_at"`
}

type analyzeRequest struct {
	ComplaintText  string `json:"complaint_text"`
	DateOfIncident string `json:"date_of_incident,omitempty"`
}

// ComplaintsClient wraps the complaint endpoints.
type ComplaintsClient struct {
	api *apiclient.Client
}

func NewComplaintsClient(api *apiclient.Client) *ComplaintsClient {
	return &ComplaintsClient{api: api}
}

// Analyze submits a complaint for ML classification.
func (c *ComplaintsClient) Analyze(ctx context.Context, complaintText, dateOfIncident string) (*Analysis, error) {
	if strings.TrimSpace(complaintText) == "" {
		return nil, fmt.Errorf("complaint text is required")
	}
	analysis := &Analysis{}
	err := c.api.ExecuteRequest(ctx, apiclient.Request{
		Method:     http.MethodPost,
		Path:       "/complaints/analyze/",
		ReqBodyObj: analyzeRequest{ComplaintText: complaintText, DateOfIncident: dateOfIncident},
		RespObj:    analysis,
	})
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

// History fetches the caller's full complaint history.
func (c *ComplaintsClient) History(ctx context.Context) ([]Complaint, error) {
	var complaints []Complaint
	err := c.api.ExecuteRequest(ctx, apiclient.Request{
		Method:  http.MethodGet,
		Path:    "/complaints/history/",
		RespObj: &complaints,
	})
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// HistoryPage fetches the history and applies the list view's
// client-side urgency filter and pagination. An empty urgency keeps
// every entry.
func (c *ComplaintsClient) HistoryPage(ctx context.Context, urgency UrgencyLevel, pageNumber, perPage int) (Page[Complaint], error) {
	complaints, err := c.History(ctx)
	if err != nil {
		return Page[Complaint]{}, err
	}
	return Paginate(FilterComplaints(complaints, urgency), pageNumber, perPage), nil
}

// FilterComplaints keeps complaints matching the urgency level; an
// empty urgency keeps everything.
func FilterComplaints(complaints []Complaint, urgency UrgencyLevel) []Complaint {
	if urgency == "" {
		return complaints
	}
	filtered := make([]Complaint, 0, len(complaints))
	for _, complaint := range complaints {
		if strings.EqualFold(string(complaint.PredictedUrgency), string(urgency)) {
			filtered = append(filtered, complaint)
		}
	}
	return filtered
}
