package portal

import (
	"context"
	"net/http"
	"strings"

	"github.com/nyayasetu/go-legalaid/apiclient"
)

// IPCSection is one Indian Penal Code section from the explorer data.
type IPCSection struct {
	ID               int64  `json:"id"`
	SectionNumber    string `json:"section_number"`
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	MappedCategory   string `json:"mapped_category"`
	FullLegalText    string `json:"full_legal_text"`
}

// SectionsClient wraps the IPC explorer endpoint.
type SectionsClient struct {
	api *apiclient.Client
}

func NewSectionsClient(api *apiclient.Client) *SectionsClient {
	return &SectionsClient{api: api}
}

// Sections fetches the full IPC section list.
func (c *SectionsClient) Sections(ctx context.Context) ([]IPCSection, error) {
	var sections []IPCSection
	err := c.api.ExecuteRequest(ctx, apiclient.Request{
		Method:  http.MethodGet,
		Path:    "/ml/ipc/",
		RespObj: &sections,
	})
	if err != nil {
		return nil, err
	}
	return sections, nil
}

// Search fetches the sections and applies the explorer's client-side
// search and category filter, paginated.
func (c *SectionsClient) Search(ctx context.Context, query, category string, pageNumber, perPage int) (Page[IPCSection], error) {
	sections, err := c.Sections(ctx)
	if err != nil {
		return Page[IPCSection]{}, err
	}
	return Paginate(FilterSections(sections, query, category), pageNumber, perPage), nil
}

// FilterSections keeps sections whose searchable fields contain the
// query, restricted to a category when one is given ("all" and ""
// both mean every category).
func FilterSections(sections []IPCSection, query, category string) []IPCSection {
	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.TrimSpace(category)
	allCategories := category == "" || strings.EqualFold(category, "all")

	filtered := make([]IPCSection, 0, len(sections))
	for _, section := range sections {
		if !allCategories && !strings.EqualFold(section.MappedCategory, category) {
			continue
		}
		if query != "" && !sectionMatches(section, query) {
			continue
		}
		filtered = append(filtered, section)
	}
	return filtered
}

func sectionMatches(section IPCSection, loweredQuery string) bool {
	for _, field := range []string{
		section.SectionNumber,
		section.Title,
		section.ShortDescription,
		section.MappedCategory,
		section.FullLegalText,
	} {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}
