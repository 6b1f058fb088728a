package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/fintrack/fintrack-server/internal/api/http/context"
	"github.com/fintrack/fintrack-server/internal/mocks"
	"github.com/fintrack/fintrack-server/internal/model"
	"github.com/fintrack/fintrack-server/internal/testutil"
)

func authedRequest(t *testing.T, cm model.ContextManager, method, target string, body string, identity model.Identity) *http.Request {
	t.Helper()

	r := httptest.NewRequest(method, target, strings.NewReader(body))
	return r.WithContext(cm.SetIdentityToContext(r.Context(), identity))
}

func TestTransaction_Create(t *testing.T) {
	t.Parallel()

	cm := httpctx.NewManager()
	svc := &mocks.TransactionService{}
	identity := model.Identity{ID: uuid.New(), Email: "ana@x.com"}
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	svc.On("Create", mock.Anything, mock.MatchedBy(func(p model.CreateTransactionParams) bool {
		return p.OwnerID == identity.ID && p.Kind == model.KindExpense && p.Amount == 42.5
	})).Return(model.Transaction{
		ID: uuid.New(), OwnerID: identity.ID, Kind: model.KindExpense,
		Amount: 42.5, Category: "food", Date: date, PaymentMethod: "cash",
	}, nil)

	h := NewTransaction(svc, cm, testutil.MakeNoopLogger())

	r := authedRequest(t, cm, http.MethodPost, "/transactions",
		`{"kind":"expense","amount":42.5,"category":"food","date":"2024-03-10T00:00:00Z"}`, identity)
	w := httptest.NewRecorder()

	h.Create(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Transaction struct {
			OwnerID       string  `json:"owner_id"`
			Kind          string  `json:"kind"`
			Amount        float64 `json:"amount"`
			PaymentMethod string  `json:"payment_method"`
		} `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, identity.ID.String(), body.Transaction.OwnerID)
	assert.Equal(t, "cash", body.Transaction.PaymentMethod)
}

func TestTransaction_Create_NoIdentity(t *testing.T) {
	t.Parallel()

	cm := httpctx.NewManager()
	svc := &mocks.TransactionService{}
	h := NewTransaction(svc, cm, testutil.MakeNoopLogger())

	r := httptest.NewRequest(http.MethodPost, "/transactions",
		strings.NewReader(`{"kind":"expense","amount":1,"category":"food","date":"2024-03-10T00:00:00Z"}`))
	w := httptest.NewRecorder()

	h.Create(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransaction_Get_ForbiddenVersusNotFound(t *testing.T) {
	t.Parallel()

	cm := httpctx.NewManager()
	svc := &mocks.TransactionService{}
	identity := model.Identity{ID: uuid.New(), Email: "ana@x.com"}
	foreign := uuid.New()
	missing := uuid.New()

	svc.On("Get", mock.Anything, identity.ID, foreign).
		Return(model.Transaction{}, model.ErrForbidden)
	svc.On("Get", mock.Anything, identity.ID, missing).
		Return(model.Transaction{}, model.ErrNotFound)

	h := NewTransaction(svc, cm, testutil.MakeNoopLogger())

	tests := []struct {
		name         string
		id           uuid.UUID
		expectStatus int
	}{
		{name: "foreign record", id: foreign, expectStatus: http.StatusForbidden},
		{name: "absent record", id: missing, expectStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := authedRequest(t, cm, http.MethodGet, "/transactions/"+tt.id.String(), "", identity)
			r = mux.SetURLVars(r, map[string]string{"id": tt.id.String()})
			w := httptest.NewRecorder()

			h.Get(w, r)

			assert.Equal(t, tt.expectStatus, w.Code)
		})
	}
}

func TestTransaction_List_Filters(t *testing.T) {
	t.Parallel()

	cm := httpctx.NewManager()
	svc := &mocks.TransactionService{}
	identity := model.Identity{ID: uuid.New(), Email: "ana@x.com"}

	expectedFilter := model.TransactionFilter{
		Kind:     model.KindExpense,
		Category: "food",
		From:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	svc.On("List", mock.Anything, identity.ID, expectedFilter).
		Return([]model.Transaction{
			{ID: uuid.New(), OwnerID: identity.ID, Kind: model.KindExpense, Category: "food"},
			{ID: uuid.New(), OwnerID: identity.ID, Kind: model.KindExpense, Category: "food"},
		}, nil)

	h := NewTransaction(svc, cm, testutil.MakeNoopLogger())

	r := authedRequest(t, cm, http.MethodGet,
		"/transactions?kind=expense&category=food&from=2024-03-01&to=2024-03-31", "", identity)
	w := httptest.NewRecorder()

	h.List(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count        int               `json:"count"`
		Transactions []json.RawMessage `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Len(t, body.Transactions, 2)
}

func TestTransaction_List_BadDate(t *testing.T) {
	t.Parallel()

	cm := httpctx.NewManager()
	svc := &mocks.TransactionService{}
	identity := model.Identity{ID: uuid.New()}

	h := NewTransaction(svc, cm, testutil.MakeNoopLogger())

	r := authedRequest(t, cm, http.MethodGet, "/transactions?from=yesterday", "", identity)
	w := httptest.NewRecorder()

	h.List(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransaction_Update(t *testing.T) {
	t.Parallel()

	cm := httpctx.NewManager()
	svc := &mocks.TransactionService{}
	identity := model.Identity{ID: uuid.New()}
	id := uuid.New()

	svc.On("Update", mock.Anything, identity.ID, mock.MatchedBy(func(p model.UpdateTransactionParams) bool {
		return p.ID == id && p.Amount != nil && *p.Amount == 99 && p.Kind == nil
	})).Return(model.Transaction{ID: id, OwnerID: identity.ID, Kind: model.KindExpense, Amount: 99, Category: "food", Date: time.Now(), PaymentMethod: "cash"}, nil)

	h := NewTransaction(svc, cm, testutil.MakeNoopLogger())

	r := authedRequest(t, cm, http.MethodPut, "/transactions/"+id.String(), `{"amount":99}`, identity)
	r = mux.SetURLVars(r, map[string]string{"id": id.String()})
	w := httptest.NewRecorder()

	h.Update(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestTransaction_Delete(t *testing.T) {
	t.Parallel()

	cm := httpctx.NewManager()
	svc := &mocks.TransactionService{}
	identity := model.Identity{ID: uuid.New()}
	id := uuid.New()

	svc.On("Delete", mock.Anything, identity.ID, id).Return(nil)

	h := NewTransaction(svc, cm, testutil.MakeNoopLogger())

	r := authedRequest(t, cm, http.MethodDelete, "/transactions/"+id.String(), "", identity)
	r = mux.SetURLVars(r, map[string]string{"id": id.String()})
	w := httptest.NewRecorder()

	h.Delete(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "transaction deleted", body["message"])
}

func TestTransaction_Delete_UnparseableID(t *testing.T) {
	t.Parallel()

	cm := httpctx.NewManager()
	svc := &mocks.TransactionService{}
	identity := model.Identity{ID: uuid.New()}

	h := NewTransaction(svc, cm, testutil.MakeNoopLogger())

	r := authedRequest(t, cm, http.MethodDelete, "/transactions/not-a-uuid", "", identity)
	r = mux.SetURLVars(r, map[string]string{"id": "not-a-uuid"})
	w := httptest.NewRecorder()

	h.Delete(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
