package service

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/louisbranch/dwelling.space/internal/listings"
	"github.com/louisbranch/dwelling.space/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type fakeSource struct{}

func (fakeSource) ListProperties(context.Context, listings.SearchQuery) ([]listings.Property, error) {
	return []listings.Property{{ExternalID: "7", Title: "Marina flat", Price: 95000}}, nil
}

func (fakeSource) PropertyDetail(context.Context, string) (listings.Property, error) {
	return listings.Property{}, listings.ErrNotFound
}

func (fakeSource) AutoComplete(context.Context, string) ([]listings.Location, error) {
	return nil, nil
}

func connect(t *testing.T) (*mcp.ClientSession, func()) {
	t.Helper()
	server, err := New(fakeSource{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer connectCancel()
	session, err := client.Connect(connectCtx, clientTransport, nil)
	if err != nil {
		cancel()
		t.Fatalf("connect client: %v", err)
	}
	return session, func() {
		_ = session.Close()
		cancel()
		select {
		case <-serveErr:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop after cancel")
		}
	}
}

func TestNewRequiresSource(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); err == nil {
		t.Fatal("expected missing source error")
	}
}

func TestServerListsTools(t *testing.T) {
	session, done := connect(t)
	defer done()

	result, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	want := []string{"project_cash_flow", "property_detail", "search_properties"}
	if len(names) != len(want) {
		t.Fatalf("tools = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("tools = %v, want %v", names, want)
		}
	}
}

func TestServerProjectsCashFlow(t *testing.T) {
	session, done := connect(t)
	defer done()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "project_cash_flow",
		Arguments: map[string]any{
			"purchase_price":               530000000,
			"down_payment_ratio":           0.2,
			"annual_interest_rate_percent": 3.5,
			"loan_term_years":              30,
			"gross_rental_income_annual":   40000000,
			"operating_expenses_annual":    10000000,
			"vacancy_rate_percent":         5,
			"appreciation_rate_percent":    2,
			"holding_period_years":         10,
		},
	})
	if err != nil {
		t.Fatalf("CallTool() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("tool returned error: %+v", result.Content)
	}
	encoded, err := json.Marshal(result.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var out domain.CashFlowResult
	if err := json.Unmarshal(encoded, &out); err != nil {
		t.Fatalf("decode structured content: %v", err)
	}
	if len(out.Rows) != 10 {
		t.Fatalf("rows = %d, want 10", len(out.Rows))
	}
	if out.Rows[0].NetOperatingIncome != 28000000 {
		t.Fatalf("noi = %v, want 28000000", out.Rows[0].NetOperatingIncome)
	}
}

func TestServerReportsToolErrors(t *testing.T) {
	session, done := connect(t)
	defer done()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "property_detail",
		Arguments: map[string]any{"external_id": "missing"},
	})
	if err != nil {
		t.Fatalf("CallTool() error = %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error result")
	}
}

func TestServerRejectsHugeHoldingPeriod(t *testing.T) {
	session, done := connect(t)
	defer done()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "project_cash_flow",
		Arguments: map[string]any{
			"purchase_price":               100,
			"down_payment_ratio":           0.2,
			"annual_interest_rate_percent": 3,
			"loan_term_years":              30,
			"gross_rental_income_annual":   12,
			"operating_expenses_annual":    3,
			"vacancy_rate_percent":         5,
			"appreciation_rate_percent":    2,
			"holding_period_years":         1 << 50,
		},
	})
	if err != nil {
		t.Fatalf("CallTool() error = %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error result")
	}

	// The session keeps serving after the rejected call.
	if _, err := session.ListTools(context.Background(), nil); err != nil {
		t.Fatalf("ListTools() after rejection error = %v", err)
	}
}

func TestServeRejectsUnconfiguredServer(t *testing.T) {
	t.Parallel()

	var s *Server
	if err := s.serveWithTransport(context.Background(), nil); err == nil {
		t.Fatal("expected configuration error")
	}
}
