package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/shaiso/iikoctl/internal/config"
	"github.com/shaiso/iikoctl/internal/iiko"
	"github.com/shaiso/iikoctl/internal/order"
	"github.com/shaiso/iikoctl/internal/store"
)

// fakeIiko отвечает фиксированными данными на эндпоинты iiko API.
func fakeIiko(t *testing.T) *httptest.Server {
	t.Helper()

	responses := map[string]string{
		"/api/1/access_token":  `{"correlationId":"auth","token":"tok"}`,
		"/api/1/organizations": `{"correlationId":"c","organizations":[{"id":"O1","name":"Ресторан"}]}`,
		"/api/1/nomenclature": `{"correlationId":"menu","revision":5,"groups":[{"id":"g1"}],"productCategories":[],
			"products":[
				{"id":"P1","name":"Борщ","sizePrices":[{"sizeId":null,"price":{"currentPrice":150}}]},
				{"id":"P2","name":"Пицца","sizePrices":[{"sizeId":"S1","price":{"currentPrice":300}}]}
			],"sizes":[{"id":"S1","name":"M"}]}`,
		"/api/1/terminal_groups": `{"terminalGroups":[
			{"organizationId":"O1","items":[{"id":"TG1","organizationId":"O1","name":"Касса","address":"Ленина, 1"}]},
			{"organizationId":"O2","items":[]}
		]}`,
		"/api/1/reserve/available_restaurant_sections": `{"restaurantSections":[{"id":"S1","name":"Зал","tables":[
			{"id":"T1","number":1,"seatingCapacity":4,"isDeleted":false},
			{"id":"T2","number":2,"seatingCapacity":2,"isDeleted":true}
		]}],"revision":1}`,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/1/access_token" && r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errorDescription":"token expired"}`))
			return
		}

		if r.URL.Path == "/api/1/order/by_id" {
			var req iiko.OrdersByIDRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.OrderIDs) == 1 && req.OrderIDs[0] == "ord-1" {
				w.Write([]byte(`{"orders":[{"id":"ord-1","creationStatus":"Success","order":{"number":42,"status":"New","sum":300}}]}`))
				return
			}
			w.Write([]byte(`{"orders":[]}`))
			return
		}

		body, ok := responses[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestDeps(t *testing.T, apiURL string) (*Deps, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	cfg.APIURL = apiURL
	cfg.APILogin = "login"
	cfg.MenuDir = t.TempDir()

	var out, errOut bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := NewDeps(&cfg, prometheus.NewRegistry(), logger, strings.NewReader(""), &out, &errOut)
	return deps, &out, &errOut
}

func execute(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd.Execute()
}

func TestOrgList(t *testing.T) {
	srv := fakeIiko(t)
	deps, out, _ := newTestDeps(t, srv.URL)

	if err := execute(NewOrgCmd(deps), "list"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "ID") || !strings.Contains(text, "NAME") {
		t.Errorf("headers missing:\n%s", text)
	}
	if !strings.Contains(text, "O1") || !strings.Contains(text, "Ресторан") {
		t.Errorf("organization missing:\n%s", text)
	}
}

func TestOrgList_JSON(t *testing.T) {
	srv := fakeIiko(t)
	deps, out, _ := newTestDeps(t, srv.URL)
	deps.JSON = true

	if err := execute(NewOrgCmd(deps), "list"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var orgs []iiko.Organization
	if err := json.Unmarshal(out.Bytes(), &orgs); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(orgs) != 1 || orgs[0].ID != "O1" {
		t.Errorf("unexpected organizations %+v", orgs)
	}
}

func TestCommand_NoAPILogin(t *testing.T) {
	srv := fakeIiko(t)
	deps, _, _ := newTestDeps(t, srv.URL)
	deps.Config.APILogin = ""

	err := execute(NewOrgCmd(deps), "list")
	if !errors.Is(err, ErrNoAPILogin) {
		t.Errorf("expected ErrNoAPILogin, got %v", err)
	}
}

func TestCommand_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errorDescription":"Login is not authorized"}`))
	}))
	defer srv.Close()

	deps, _, _ := newTestDeps(t, srv.URL)

	err := execute(NewOrgCmd(deps), "list")
	var apiErr *iiko.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Description != "Login is not authorized" {
		t.Errorf("unexpected error %+v", apiErr)
	}
}

func TestTerminalList_FlattensGroups(t *testing.T) {
	srv := fakeIiko(t)
	deps, out, _ := newTestDeps(t, srv.URL)
	deps.JSON = true

	if err := execute(NewTerminalCmd(deps), "list", "O1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var groups []iiko.TerminalGroup
	if err := json.Unmarshal(out.Bytes(), &groups); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(groups) != 1 || groups[0].ID != "TG1" {
		t.Errorf("expected [TG1], got %+v", groups)
	}
}

func TestTableList(t *testing.T) {
	srv := fakeIiko(t)

	t.Run("available only", func(t *testing.T) {
		deps, out, _ := newTestDeps(t, srv.URL)
		if err := execute(NewTableCmd(deps), "list", "TG1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "T1") || strings.Contains(out.String(), "T2") {
			t.Errorf("deleted table must be hidden:\n%s", out.String())
		}
	})

	t.Run("all", func(t *testing.T) {
		deps, out, _ := newTestDeps(t, srv.URL)
		if err := execute(NewTableCmd(deps), "list", "TG1", "--all"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "T2") {
			t.Errorf("--all must include deleted tables:\n%s", out.String())
		}
	})
}

func TestListTables_Empty(t *testing.T) {
	rows := listTables(nil, false)
	if rows == nil || len(rows) != 0 {
		t.Errorf("expected empty non-nil slice for JSON output, got %#v", rows)
	}
}

func TestMenuShow_Save(t *testing.T) {
	srv := fakeIiko(t)
	deps, out, errOut := newTestDeps(t, srv.URL)

	if err := execute(NewMenuCmd(deps), "show", "O1", "--save"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := out.String()
	for _, want := range []string{"REVISION", "PRODUCTS", "5"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}

	path := filepath.Join(deps.Config.MenuDir, "menu_O1.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("menu file not written: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"correlationId\": \"menu\"") {
		t.Errorf("menu file must be pretty-printed:\n%s", data)
	}
	if !strings.Contains(errOut.String(), "Menu saved: "+path) {
		t.Errorf("save message missing: %s", errOut.String())
	}
}

func TestMenuShow_JSON(t *testing.T) {
	srv := fakeIiko(t)
	deps, out, _ := newTestDeps(t, srv.URL)
	deps.JSON = true

	if err := execute(NewMenuCmd(deps), "show", "O1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var summary MenuSummary
	if err := json.Unmarshal(out.Bytes(), &summary); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if summary.Revision != 5 || summary.Products != 2 || summary.Groups != 1 || summary.Sizes != 1 {
		t.Errorf("unexpected summary %+v", summary)
	}
}

func TestMenu_Cached(t *testing.T) {
	srv := fakeIiko(t)
	deps, _, _ := newTestDeps(t, srv.URL)

	if err := execute(NewMenuCmd(deps), "show", "O1", "--save"); err != nil {
		t.Fatalf("save: %v", err)
	}

	// API недоступен: меню читается из каталога.
	cached, out, _ := newTestDeps(t, "http://127.0.0.1:0")
	cached.Config.MenuDir = deps.Config.MenuDir
	cached.JSON = true

	if err := execute(NewMenuCmd(cached), "products", "O1", "--cached"); err != nil {
		t.Fatalf("cached products: %v", err)
	}

	var products []ProductRow
	if err := json.Unmarshal(out.Bytes(), &products); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(products) != 2 || products[1].Price != "300" {
		t.Errorf("unexpected cached products %+v", products)
	}
}

func TestMenu_CachedMissing(t *testing.T) {
	deps, _, _ := newTestDeps(t, "http://127.0.0.1:0")

	err := execute(NewMenuCmd(deps), "show", "O1", "--cached")
	if !errors.Is(err, store.ErrMenuNotCached) {
		t.Errorf("expected ErrMenuNotCached, got %v", err)
	}
}

func TestMenuShow_CachedAndSaveExclusive(t *testing.T) {
	deps, _, _ := newTestDeps(t, "http://127.0.0.1:0")

	if err := execute(NewMenuCmd(deps), "show", "O1", "--cached", "--save"); err == nil {
		t.Error("expected error for --cached with --save")
	}
}

func TestMenuProducts(t *testing.T) {
	srv := fakeIiko(t)
	deps, out, _ := newTestDeps(t, srv.URL)
	deps.JSON = true

	if err := execute(NewMenuCmd(deps), "products", "O1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var products []ProductRow
	if err := json.Unmarshal(out.Bytes(), &products); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].SizeID != nil || products[0].Price != "150" {
		t.Errorf("unexpected unsized product %+v", products[0])
	}
	if products[1].SizeID == nil || *products[1].SizeID != "S1" || products[1].Price != "300" {
		t.Errorf("unexpected sized product %+v", products[1])
	}
}

func TestOrderStatus(t *testing.T) {
	srv := fakeIiko(t)
	deps, out, _ := newTestDeps(t, srv.URL)

	if err := execute(NewOrderCmd(deps), "status", "ord-1", "--org", "O1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := out.String()
	for _, want := range []string{"ord-1", "Success", "New", "42", "300"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestOrderStatus_NotFound(t *testing.T) {
	srv := fakeIiko(t)
	deps, _, _ := newTestDeps(t, srv.URL)

	err := execute(NewOrderCmd(deps), "status", "missing", "--org", "O1")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderStatus_NoOrgWithoutJournal(t *testing.T) {
	srv := fakeIiko(t)
	deps, _, _ := newTestDeps(t, srv.URL)

	err := execute(NewOrderCmd(deps), "status", "ord-1")
	if !errors.Is(err, ErrNoJournal) {
		t.Errorf("expected ErrNoJournal without --org and DB_URL, got %v", err)
	}
}

func TestOrderStatus_OrgFromJournal(t *testing.T) {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		t.Skip("DB_URL not set")
	}

	srv := fakeIiko(t)
	deps, _, _ := newTestDeps(t, srv.URL)
	deps.Config.DBURL = dsn

	orders, closeJournal, err := deps.Journal(testContext(t))
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	defer closeJournal()

	orderID := "cli-" + uuid.NewString()
	if err := orders.Create(testContext(t), order.Placed{
		OrderID:        orderID,
		OrganizationID: "O1",
		Price:          decimal.NewFromInt(150),
		Amount:         1,
		CreatedAt:      time.Now(),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Заказ из журнала iiko не знает: организация найдена, ответ пустой.
	err = execute(NewOrderCmd(deps), "status", orderID)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound from the API, got %v", err)
	}
	if strings.Contains(err.Error(), "journal") {
		t.Errorf("organization must be resolved from the journal, got %v", err)
	}
}

func TestOrderHistory_NoJournal(t *testing.T) {
	deps, _, _ := newTestDeps(t, "http://127.0.0.1:0")

	err := execute(NewOrderCmd(deps), "history")
	if !errors.Is(err, ErrNoJournal) {
		t.Errorf("expected ErrNoJournal, got %v", err)
	}
}

func TestOrderEvents_NoBroker(t *testing.T) {
	deps, _, _ := newTestDeps(t, "http://127.0.0.1:0")

	err := execute(NewOrderCmd(deps), "events")
	if !errors.Is(err, ErrNoBroker) {
		t.Errorf("expected ErrNoBroker, got %v", err)
	}
}

func TestMenuSinks_FileOnly(t *testing.T) {
	deps, _, _ := newTestDeps(t, "http://127.0.0.1:0")

	sinks, closeSinks := deps.MenuSinks(testContext(t))
	defer closeSinks()

	if len(sinks) != 1 || sinks[0].Name() != "файл" {
		t.Errorf("expected only the file sink, got %d sinks", len(sinks))
	}

	observers, closeObservers := deps.Observers(testContext(t))
	defer closeObservers()
	if len(observers) != 0 {
		t.Errorf("expected no observers without infrastructure, got %d", len(observers))
	}
}

func TestOutput_Table(t *testing.T) {
	var out bytes.Buffer
	o := NewOutput(false, &out, io.Discard)

	o.Print([]string{"ID", "NAME"}, [][]string{{"O1", "Ресторан"}}, nil)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header, separator and row, got %q", out.String())
	}
	if !strings.HasPrefix(lines[1], "--") {
		t.Errorf("unexpected separator %q", lines[1])
	}
}

func TestOutput_Messages(t *testing.T) {
	var errOut bytes.Buffer
	o := NewOutput(false, io.Discard, &errOut)

	o.Success("done")
	o.Error("failed")

	if errOut.String() != "done\nError: failed\n" {
		t.Errorf("unexpected messages %q", errOut.String())
	}
}
