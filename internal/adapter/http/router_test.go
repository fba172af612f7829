package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"pet-adoption-backend/internal/adapter/middleware"
	"pet-adoption-backend/internal/adapter/repository/mysql"
	"pet-adoption-backend/internal/domain/adoption"
	"pet-adoption-backend/internal/domain/pet"
	qDomain "pet-adoption-backend/internal/domain/questionnaire"
	"pet-adoption-backend/internal/domain/review"
	"pet-adoption-backend/internal/testutil/dbtest"
	ucAdoption "pet-adoption-backend/internal/usecase/adoption"
	"pet-adoption-backend/internal/usecase/catalog"
	"pet-adoption-backend/internal/usecase/identity"
	ucQuestionnaire "pet-adoption-backend/internal/usecase/questionnaire"
	ucReview "pet-adoption-backend/internal/usecase/review"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testApp struct {
	e  *echo.Echo
	db *gorm.DB
}

func newTestApp(t *testing.T, rdb *redis.Client) *testApp {
	t.Helper()
	gdb := dbtest.OpenSeeded(t)
	repos := mysql.NewRepos(gdb)
	tx := mysql.NewGormUoW(gdb)

	q := ucQuestionnaire.NewUsecase(repos.Questionnaires, tx)
	a := ucAdoption.NewUsecase(repos.Adoptions, tx)
	e := NewRouter(Deps{
		Identity:       identity.NewUsecase(repos.Users, repos.Admins, bcrypt.MinCost),
		Catalog:        catalog.NewUsecase(repos.Pets),
		Questionnaires: q,
		Adoptions:      a,
		Reviews:        ucReview.NewUsecase(q, a, nil),
		Redis:          rdb,
		IdempotencyTTL: time.Minute,
	})
	return &testApp{e: e, db: gdb}
}

var asAdmin = map[string]string{middleware.HeaderAdminUsername: "root"}

func (a *testApp) do(t *testing.T, method, path string, body any, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad json (%d): %v; raw=%s", rec.Code, err, rec.Body.String())
	}
	return out
}

func expectCode(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body=%s", rec.Code, want, rec.Body.String())
	}
}

func register(t *testing.T, app *testApp, name string) {
	t.Helper()
	expectCode(t, app.do(t, http.MethodPost, "/api/register", map[string]string{"username": name, "password": "pw"}, nil), http.StatusCreated)
}

func validAnswers() map[string]string {
	return map[string]string{
		"pet_type": "dog", "size": "medium", "activity_level": "high", "maintenance_level": "low", "budget": "medium",
	}
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t, nil)
	rec := app.do(t, http.MethodGet, "/health", nil, nil)
	expectCode(t, rec, http.StatusOK)
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Fatalf("request id header missing")
	}
}

func TestRouter_Identity(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodPost, "/api/register", map[string]string{"username": "alice", "password": "s3cret"}, nil)
	expectCode(t, rec, http.StatusCreated)
	reg := decode[struct {
		Message string            `json:"message"`
		User    map[string]string `json:"user"`
	}](t, rec)
	if reg.User["username"] != "alice" || reg.Message == "" {
		t.Fatalf("unexpected register body: %+v", reg)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("password")) {
		t.Fatalf("password material leaked: %s", rec.Body.String())
	}

	expectCode(t, app.do(t, http.MethodPost, "/api/register", map[string]string{"username": "alice", "password": "x"}, nil), http.StatusConflict)

	rec = app.do(t, http.MethodPost, "/api/register", map[string]string{"password": "x"}, nil)
	expectCode(t, rec, http.StatusBadRequest)
	if body := decode[ErrorResponse](t, rec); !containsFieldMsg(body.Details, "username", "is required") {
		t.Fatalf("expected username field detail: %+v", body)
	}

	expectCode(t, app.do(t, http.MethodPost, "/api/login", map[string]string{"username": "alice", "password": "s3cret"}, nil), http.StatusOK)
	expectCode(t, app.do(t, http.MethodPost, "/api/login", map[string]string{"username": "alice", "password": "nope"}, nil), http.StatusUnauthorized)
	expectCode(t, app.do(t, http.MethodPost, "/api/login", map[string]string{"username": "ghost", "password": "s3cret"}, nil), http.StatusUnauthorized)

	rec = app.do(t, http.MethodPost, "/api/admin/login", map[string]string{"username": "root", "password": "rootpw"}, nil)
	expectCode(t, rec, http.StatusOK)
	if adm := decode[map[string]any](t, rec); adm["admin"].(map[string]any)["username"] != "root" {
		t.Fatalf("unexpected admin login body: %v", adm)
	}
	// user credentials never grant admin
	expectCode(t, app.do(t, http.MethodPost, "/api/admin/login", map[string]string{"username": "alice", "password": "s3cret"}, nil), http.StatusUnauthorized)
}

func TestRouter_Pets(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodGet, "/api/pets", nil, nil)
	expectCode(t, rec, http.StatusOK)
	if pets := decode[[]pet.Pet](t, rec); len(pets) != 5 {
		t.Fatalf("want 5 pets, got %d", len(pets))
	}

	rec = app.do(t, http.MethodGet, "/api/pets/3", nil, nil)
	expectCode(t, rec, http.StatusOK)
	if p := decode[pet.Pet](t, rec); p.Name != "Charlie" || p.EnergyLevel == "" {
		t.Fatalf("unexpected pet: %+v", p)
	}

	expectCode(t, app.do(t, http.MethodGet, "/api/pets/99", nil, nil), http.StatusNotFound)
	expectCode(t, app.do(t, http.MethodGet, "/api/pets/abc", nil, nil), http.StatusBadRequest)
}

func TestRouter_SubmitQuestionnaire_Validation(t *testing.T) {
	app := newTestApp(t, nil)
	register(t, app, "alice")

	tests := []struct {
		name     string
		body     any
		wantCode int
		wantMsg  string
	}{
		{"no answers", map[string]any{"username": "alice"}, http.StatusBadRequest, "validation failed"},
		{"no username", map[string]any{"answers": validAnswers()}, http.StatusBadRequest, "validation failed"},
		{
			"missing budget",
			map[string]any{"username": "alice", "answers": map[string]string{"pet_type": "dog", "size": "medium", "activity_level": "high", "maintenance_level": "low"}},
			http.StatusBadRequest, "answers.budget is required",
		},
		{"unknown user", map[string]any{"username": "ghost", "answers": validAnswers()}, http.StatusUnauthorized, "unknown user"},
		{"malformed json", "not-an-object", http.StatusBadRequest, "invalid body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, http.MethodPost, "/api/questionnaire", tt.body, nil)
			expectCode(t, rec, tt.wantCode)
			if got := decode[ErrorResponse](t, rec).Error; got != tt.wantMsg {
				t.Fatalf("error = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestRouter_SubmitQuestionnaire_LivingSpaceAlias(t *testing.T) {
	app := newTestApp(t, nil)
	register(t, app, "alice")

	answers := validAnswers()
	delete(answers, "size")
	answers["living_space"] = "Large"
	expectCode(t, app.do(t, http.MethodPost, "/api/questionnaire", map[string]any{"username": "alice", "answers": answers}, nil), http.StatusOK)

	rec := app.do(t, http.MethodGet, "/api/questionnaire/alice", nil, nil)
	expectCode(t, rec, http.StatusOK)
	if got := decode[ucQuestionnaire.QuestionnaireDTO](t, rec); got.Answers.Size != "large" {
		t.Fatalf("size = %q, want large", got.Answers.Size)
	}
}

// Scenario A: submit, admin approves with pet 3, user sees APPROVED with that pet.
func TestScenario_QuestionnaireApproval(t *testing.T) {
	app := newTestApp(t, nil)
	register(t, app, "alice")

	rec := app.do(t, http.MethodPost, "/api/questionnaire", map[string]any{"username": "alice", "answers": validAnswers()}, nil)
	expectCode(t, rec, http.StatusOK)
	sub := decode[ucQuestionnaire.SubmitResult](t, rec)
	if sub.Status != "PENDING" || sub.ID == 0 {
		t.Fatalf("unexpected submit result: %+v", sub)
	}

	rec = app.do(t, http.MethodGet, "/api/admin/questionnaires?status=PENDING", nil, asAdmin)
	expectCode(t, rec, http.StatusOK)
	if list := decode[[]ucQuestionnaire.QuestionnaireDTO](t, rec); len(list) != 1 || list[0].ID != sub.ID {
		t.Fatalf("pending list: %+v", list)
	}

	path := fmt.Sprintf("/api/admin/questionnaires/%d/approve", sub.ID)
	rec = app.do(t, http.MethodPost, path, map[string]any{"pet_ids": []uint64{3}}, asAdmin)
	expectCode(t, rec, http.StatusOK)
	if upd := decode[ucQuestionnaire.QuestionnaireDTO](t, rec); upd.Status != "APPROVED" {
		t.Fatalf("approve response: %+v", upd)
	}

	rec = app.do(t, http.MethodGet, "/api/questionnaire/alice", nil, nil)
	expectCode(t, rec, http.StatusOK)
	got := decode[ucQuestionnaire.QuestionnaireDTO](t, rec)
	if got.Status != "APPROVED" || len(got.Recommendations) != 1 || got.Recommendations[0].ID != 3 {
		t.Fatalf("unexpected questionnaire: %+v", got)
	}
	if got.ReviewedBy == nil || *got.ReviewedBy != "root" {
		t.Fatalf("reviewer not recorded: %+v", got.ReviewedBy)
	}

	// re-approval is rejected, not a no-op
	expectCode(t, app.do(t, http.MethodPost, path, map[string]any{"pet_ids": []uint64{3}}, asAdmin), http.StatusConflict)
	expectCode(t, app.do(t, http.MethodPost, fmt.Sprintf("/api/admin/questionnaires/%d/reject", sub.ID), nil, asAdmin), http.StatusConflict)
}

func TestRouter_ApproveQuestionnaire_BadPetIDs(t *testing.T) {
	app := newTestApp(t, nil)
	register(t, app, "alice")
	rec := app.do(t, http.MethodPost, "/api/questionnaire", map[string]any{"username": "alice", "answers": validAnswers()}, nil)
	id := decode[ucQuestionnaire.SubmitResult](t, rec).ID
	path := fmt.Sprintf("/api/admin/questionnaires/%d/approve", id)

	for _, body := range []any{nil, map[string]any{"pet_ids": []uint64{}}, map[string]any{"pet_ids": []uint64{1, 2}}, map[string]any{"pet_ids": []uint64{99}}} {
		expectCode(t, app.do(t, http.MethodPost, path, body, asAdmin), http.StatusBadRequest)
	}
	expectCode(t, app.do(t, http.MethodPost, "/api/admin/questionnaires/999/approve", map[string]any{"pet_ids": []uint64{1}}, asAdmin), http.StatusNotFound)

	// still pending after the failed attempts
	if got := decode[ucQuestionnaire.QuestionnaireDTO](t, app.do(t, http.MethodGet, "/api/questionnaire/alice", nil, nil)); got.Status != "PENDING" {
		t.Fatalf("status = %s, want PENDING", got.Status)
	}

	// once terminal: pet_ids shape is still checked first, a well-formed approval is 409
	expectCode(t, app.do(t, http.MethodPost, fmt.Sprintf("/api/admin/questionnaires/%d/reject", id), nil, asAdmin), http.StatusOK)
	expectCode(t, app.do(t, http.MethodPost, path, map[string]any{"pet_ids": []uint64{}}, asAdmin), http.StatusBadRequest)
	expectCode(t, app.do(t, http.MethodPost, path, map[string]any{"pet_ids": []uint64{99}}, asAdmin), http.StatusConflict)
	expectCode(t, app.do(t, http.MethodPost, path, map[string]any{"pet_ids": []uint64{1}}, asAdmin), http.StatusConflict)
}

func TestRouter_GetQuestionnaire_NotFound(t *testing.T) {
	app := newTestApp(t, nil)
	expectCode(t, app.do(t, http.MethodGet, "/api/questionnaire/nobody", nil, nil), http.StatusNotFound)
}

// Scenario B: requesting a pet that does not exist fails and stores nothing.
func TestScenario_AdoptionUnknownPet(t *testing.T) {
	app := newTestApp(t, nil)
	register(t, app, "bob")
	if err := app.db.Delete(&pet.Pet{}, 5).Error; err != nil {
		t.Fatalf("delete pet 5: %v", err)
	}

	rec := app.do(t, http.MethodPost, "/api/adoptions", map[string]any{"pet_id": 5, "username": "bob"}, nil)
	expectCode(t, rec, http.StatusNotFound)

	var n int64
	if err := app.db.Model(&adoption.Request{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("no adoption request should be stored, found %d", n)
	}
}

// Scenario C: two admins approve the same PENDING request at once; exactly one wins.
func TestScenario_ConcurrentAdoptionApproval(t *testing.T) {
	app := newTestApp(t, nil)
	register(t, app, "alice")

	rec := app.do(t, http.MethodPost, "/api/adoptions", map[string]any{"pet_id": 1, "username": "alice"}, nil)
	expectCode(t, rec, http.StatusCreated)
	reqID := decode[ucAdoption.RequestDTO](t, rec).RequestID
	path := fmt.Sprintf("/api/admin/adoptions/%d/approve", reqID)

	const clients = 2
	codes := make([]int, clients)
	bodies := make([][]byte, clients)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			req := httptest.NewRequest(http.MethodPost, path, nil)
			req.Header.Set(middleware.HeaderAdminUsername, "root")
			w := httptest.NewRecorder()
			app.e.ServeHTTP(w, req)
			codes[i], bodies[i] = w.Code, w.Body.Bytes()
		}(i)
	}
	close(start)
	wg.Wait()

	var ok, conflict int
	for i, c := range codes {
		switch c {
		case http.StatusOK:
			ok++
			var dto ucAdoption.RequestDTO
			if err := json.Unmarshal(bodies[i], &dto); err != nil || dto.Status != "APPROVED" {
				t.Fatalf("winner body: %s", bodies[i])
			}
		case http.StatusConflict:
			conflict++
		default:
			t.Fatalf("unexpected status %d: %s", c, bodies[i])
		}
	}
	if ok != 1 || conflict != 1 {
		t.Fatalf("ok=%d conflict=%d, want 1/1", ok, conflict)
	}

	var stored adoption.Request
	if err := app.db.First(&stored, "request_id = ?", reqID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.Status != review.StatusApproved {
		t.Fatalf("stored status = %s", stored.Status)
	}
}

func TestRouter_IDsOutsideSignedRange(t *testing.T) {
	app := newTestApp(t, nil)
	register(t, app, "bob")
	rec := app.do(t, http.MethodPost, "/api/questionnaire", map[string]any{"username": "bob", "answers": validAnswers()}, nil)
	expectCode(t, rec, http.StatusOK)
	qPath := fmt.Sprintf("/api/admin/questionnaires/%d/approve", decode[ucQuestionnaire.SubmitResult](t, rec).ID)

	const tooBig = uint64(1) << 63
	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		wantCode int
	}{
		{"pet path id", http.MethodGet, "/api/pets/18446744073709551615", nil, http.StatusBadRequest},
		{"pet path id just past int64", http.MethodGet, "/api/pets/9223372036854775808", nil, http.StatusBadRequest},
		{"largest int64 pet id", http.MethodGet, "/api/pets/9223372036854775807", nil, http.StatusNotFound},
		{"adoption review path id", http.MethodPost, "/api/admin/adoptions/18446744073709551615/approve", nil, http.StatusBadRequest},
		{"questionnaire review path id", http.MethodPost, "/api/admin/questionnaires/18446744073709551615/reject", nil, http.StatusBadRequest},
		{"adoption body pet id", http.MethodPost, "/api/adoptions", map[string]any{"pet_id": tooBig, "username": "bob"}, http.StatusNotFound},
		{"approval body pet id", http.MethodPost, qPath, map[string]any{"pet_ids": []uint64{tooBig}}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectCode(t, app.do(t, tt.method, tt.path, tt.body, asAdmin), tt.wantCode)
		})
	}

	var n int64
	if err := app.db.Model(&adoption.Request{}).Count(&n).Error; err != nil || n != 0 {
		t.Fatalf("adoption rows = %d (%v), want 0", n, err)
	}
	if got := decode[ucQuestionnaire.QuestionnaireDTO](t, app.do(t, http.MethodGet, "/api/questionnaire/bob", nil, nil)); got.Status != "PENDING" {
		t.Fatalf("status = %s, want PENDING", got.Status)
	}
}

// Approve and reject race on one PENDING questionnaire: one wins, the other sees 409,
// and the stored row matches the winner.
func TestScenario_ConcurrentQuestionnaireReview(t *testing.T) {
	app := newTestApp(t, nil)

	for round := 0; round < 5; round++ {
		user := fmt.Sprintf("user%d", round)
		register(t, app, user)
		rec := app.do(t, http.MethodPost, "/api/questionnaire", map[string]any{"username": user, "answers": validAnswers()}, nil)
		expectCode(t, rec, http.StatusOK)
		qID := decode[ucQuestionnaire.SubmitResult](t, rec).ID

		calls := []struct {
			action string
			body   string
		}{
			{"approve", `{"pet_ids":[2]}`},
			{"reject", `{}`},
		}
		codes := make([]int, len(calls))
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i, c := range calls {
			wg.Add(1)
			go func(i int, action, body string) {
				defer wg.Done()
				<-start
				req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/admin/questionnaires/%d/%s", qID, action), bytes.NewBufferString(body))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				req.Header.Set(middleware.HeaderAdminUsername, "root")
				w := httptest.NewRecorder()
				app.e.ServeHTTP(w, req)
				codes[i] = w.Code
			}(i, c.action, c.body)
		}
		close(start)
		wg.Wait()

		var want review.Status
		switch {
		case codes[0] == http.StatusOK && codes[1] == http.StatusConflict:
			want = review.StatusApproved
		case codes[0] == http.StatusConflict && codes[1] == http.StatusOK:
			want = review.StatusRejected
		default:
			t.Fatalf("round %d: approve=%d reject=%d, want exactly one 200 and one 409", round, codes[0], codes[1])
		}

		var stored qDomain.Questionnaire
		if err := app.db.First(&stored, "id = ?", qID).Error; err != nil {
			t.Fatalf("round %d: load: %v", round, err)
		}
		if stored.Status != want {
			t.Fatalf("round %d: stored status = %s, want %s", round, stored.Status, want)
		}
		var recs int64
		if err := app.db.Model(&qDomain.Recommendation{}).Where("questionnaire_id = ?", qID).Count(&recs).Error; err != nil {
			t.Fatalf("round %d: count recommendations: %v", round, err)
		}
		wantRecs := int64(0)
		if want == review.StatusApproved {
			wantRecs = 1
		}
		if recs != wantRecs {
			t.Fatalf("round %d: recommendations = %d, want %d", round, recs, wantRecs)
		}
	}
}

func TestRouter_Adoptions(t *testing.T) {
	app := newTestApp(t, nil)
	register(t, app, "alice")
	register(t, app, "bob")

	expectCode(t, app.do(t, http.MethodPost, "/api/adoptions", map[string]any{"pet_id": 1}, nil), http.StatusUnauthorized)
	expectCode(t, app.do(t, http.MethodPost, "/api/adoptions", map[string]any{"pet_id": 1, "username": "ghost"}, nil), http.StatusUnauthorized)
	expectCode(t, app.do(t, http.MethodPost, "/api/adoptions", map[string]any{"username": "alice"}, nil), http.StatusBadRequest)

	rec := app.do(t, http.MethodPost, "/api/adoptions", map[string]any{"pet_id": 2, "username": "alice"}, nil)
	expectCode(t, rec, http.StatusCreated)
	first := decode[ucAdoption.RequestDTO](t, rec)
	if first.Status != "PENDING" || first.PetName != "Bella" {
		t.Fatalf("unexpected request: %+v", first)
	}
	// one actionable pending request per user
	expectCode(t, app.do(t, http.MethodPost, "/api/adoptions", map[string]any{"pet_id": 3, "username": "alice"}, nil), http.StatusConflict)
	expectCode(t, app.do(t, http.MethodPost, "/api/adoptions", map[string]any{"pet_id": 3, "username": "bob"}, nil), http.StatusCreated)

	expectCode(t, app.do(t, http.MethodPost, fmt.Sprintf("/api/admin/adoptions/%d/reject", first.RequestID), nil, asAdmin), http.StatusOK)
	expectCode(t, app.do(t, http.MethodPost, "/api/adoptions", map[string]any{"pet_id": 3, "username": "alice"}, nil), http.StatusCreated)

	rec = app.do(t, http.MethodGet, "/api/adoptions/alice", nil, nil)
	expectCode(t, rec, http.StatusOK)
	if mine := decode[[]ucAdoption.RequestDTO](t, rec); len(mine) != 2 || mine[0].Status != "REJECTED" || mine[1].Status != "PENDING" {
		t.Fatalf("alice's requests: %+v", mine)
	}
	rec = app.do(t, http.MethodGet, "/api/adoptions/nobody", nil, nil)
	expectCode(t, rec, http.StatusOK)
	if rec.Body.String() != "[]\n" {
		t.Fatalf("want empty list, got %s", rec.Body.String())
	}

	rec = app.do(t, http.MethodGet, "/api/admin/adoptions", nil, asAdmin)
	expectCode(t, rec, http.StatusOK)
	if all := decode[[]ucAdoption.RequestDTO](t, rec); len(all) != 3 {
		t.Fatalf("want 3 requests, got %d", len(all))
	}
	rec = app.do(t, http.MethodGet, "/api/admin/adoptions?status=pending", nil, asAdmin)
	expectCode(t, rec, http.StatusOK)
	if pending := decode[[]ucAdoption.RequestDTO](t, rec); len(pending) != 2 {
		t.Fatalf("want 2 pending, got %d", len(pending))
	}
	expectCode(t, app.do(t, http.MethodGet, "/api/admin/adoptions?status=LOST", nil, asAdmin), http.StatusBadRequest)
}

func TestRouter_AdminRoutesRequireIdentity(t *testing.T) {
	app := newTestApp(t, nil)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/admin/questionnaires"},
		{http.MethodGet, "/api/admin/adoptions"},
		{http.MethodPost, "/api/admin/questionnaires/1/approve"},
		{http.MethodPost, "/api/admin/adoptions/1/reject"},
	}
	for _, r := range routes {
		expectCode(t, app.do(t, r.method, r.path, nil, nil), http.StatusUnauthorized)
		expectCode(t, app.do(t, r.method, r.path, nil, map[string]string{middleware.HeaderAdminUsername: "mallory"}), http.StatusUnauthorized)
	}

	expectCode(t, app.do(t, http.MethodPost, "/api/admin/adoptions/1/archive", nil, asAdmin), http.StatusBadRequest)
	expectCode(t, app.do(t, http.MethodPost, "/api/admin/adoptions/0/approve", nil, asAdmin), http.StatusBadRequest)
	expectCode(t, app.do(t, http.MethodPost, "/api/admin/adoptions/42/approve", nil, asAdmin), http.StatusNotFound)
}

func TestRouter_IdempotentAdoptionRequest(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	app := newTestApp(t, rdb)
	register(t, app, "alice")

	hdr := map[string]string{middleware.HeaderIdempotencyKey: "adopt-alice-0001"}
	body := map[string]any{"pet_id": 4, "username": "alice"}
	first := app.do(t, http.MethodPost, "/api/adoptions", body, hdr)
	second := app.do(t, http.MethodPost, "/api/adoptions", body, hdr)
	expectCode(t, first, http.StatusCreated)
	expectCode(t, second, http.StatusCreated)
	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Fatalf("replay differs:\n%s\n%s", first.Body, second.Body)
	}

	// without the key the pending rule applies
	expectCode(t, app.do(t, http.MethodPost, "/api/adoptions", body, nil), http.StatusConflict)
}
