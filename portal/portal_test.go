package portal_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nyayasetu/go-legalaid/apiclient"
	"github.com/nyayasetu/go-legalaid/portal"
	"github.com/nyayasetu/go-legalaid/tokenstore"
	"github.com/nyayasetu/go-legalaid/tokenstore/storefakes"
	"github.com/stretchr/testify/require"
)

func newPortalClient(t *testing.T, handler http.Handler) *apiclient.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := storefakes.NewFakeStore()
	require.NoError(t, store.Set(tokenstore.KeyAccessToken, "A1"))
	client, err := apiclient.NewClient(server.URL, store)
	require.NoError(t, err)
	return client
}

func TestComplaintsAnalyze(t *testing.T) {
	client := newPortalClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/complaints/analyze/", r.URL.Path)
		require.Contains(t, r.Header.Get("Authorization"), "Bearer")
		fmt.Fprint(w, `{
			"predicted_urgency": "high",
			"predicted_category": "Theft",
			"recommended_sections": [
				{"section_number":"378","title":"Theft","short_description":"Dishonest taking of movable property"}
			]
		}`)
	}))

	analysis, err := portal.NewComplaintsClient(client).Analyze(
		context.Background(), "my phone was stolen", "2026-08-15",
	)
	require.NoError(t, err)
	require.Equal(t, portal.UrgencyHigh, analysis.PredictedUrgency)
	require.Equal(t, "Theft", analysis.PredictedCategory)
	require.Len(t, analysis.RecommendedSections, 1)
	require.Equal(t, "378", analysis.RecommendedSections[0].SectionNumber)
}

func TestComplaintsAnalyzeRequiresText(t *testing.T) {
	client := newPortalClient(t, http.NotFoundHandler())
	_, err := portal.NewComplaintsClient(client).Analyze(context.Background(), "  ", "")
	require.Error(t, err)
}

func TestComplaintsHistoryPageFiltersByUrgency(t *testing.T) {
	client := newPortalClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/complaints/history/", r.URL.Path)
		fmt.Fprint(w, `[
			{"id":1,"predicted_urgency":"high","predicted_category":"Theft"},
			{"id":2,"predicted_urgency":"low","predicted_category":"Nuisance"},
			{"id":3,"predicted_urgency":"high","predicted_category":"Assault"}
		]`)
	}))

	page, err := portal.NewComplaintsClient(client).HistoryPage(
		context.Background(), portal.UrgencyHigh, 1, 10,
	)
	require.NoError(t, err)
	require.Equal(t, 2, page.TotalItems)
	require.Equal(t, int64(1), page.Items[0].ID)
	require.Equal(t, int64(3), page.Items[1].ID)
}

func TestSectionsSearch(t *testing.T) {
	client := newPortalClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ml/ipc/", r.URL.Path)
		fmt.Fprint(w, `[
			{"id":1,"section_number":"378","title":"Theft","mapped_category":"Property"},
			{"id":2,"section_number":"302","title":"Punishment for murder","mapped_category":"Offences against body"},
			{"id":3,"section_number":"379","title":"Punishment for theft","mapped_category":"Property"}
		]`)
	}))

	page, err := portal.NewSectionsClient(client).Search(context.Background(), "theft", "Property", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 2, page.TotalItems)

	page, err = portal.NewSectionsClient(client).Search(context.Background(), "", "all", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 3, page.TotalItems)
}

func TestLawyersSearchAndApply(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/lawyers/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"id":1,"name":"A","specialization":"Criminal"},
			{"id":2,"name":"B","specialization":"Civil"}
		]`)
	})
	mux.HandleFunc("/lawyers/apply/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
	})
	client := newPortalClient(t, mux)

	page, err := portal.NewLawyersClient(client).Search(context.Background(), "criminal", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, page.TotalItems)
	require.Equal(t, "A", page.Items[0].Name)

	err = portal.NewLawyersClient(client).Apply(context.Background(), portal.LawyerApplication{
		Name:              "C",
		Email:             "c@example.com",
		BarRegistrationNo: "BR-123",
		Specialization:    "Criminal",
	})
	require.NoError(t, err)

	err = portal.NewLawyersClient(client).Apply(context.Background(), portal.LawyerApplication{Name: "C"})
	require.Error(t, err)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page := portal.Paginate(items, 1, 3)
	require.Equal(t, []int{1, 2, 3}, page.Items)
	require.Equal(t, 7, page.TotalItems)
	require.Equal(t, 3, page.TotalPages)

	page = portal.Paginate(items, 3, 3)
	require.Equal(t, []int{7}, page.Items)

	page = portal.Paginate(items, 5, 3)
	require.Empty(t, page.Items)
	require.Equal(t, 3, page.TotalPages)

	// Defaults kick in for nonsense paging values.
	page = portal.Paginate(items, 0, 0)
	require.Equal(t, 1, page.PageNumber)
	require.Equal(t, 7, len(page.Items))
}
