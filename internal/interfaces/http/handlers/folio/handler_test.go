package folio

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folios/internal/application/folio/usecases"
	domain "folios/internal/domain/folio"
	"folios/internal/interfaces/http/handlers/testutil"
	"folios/internal/shared/errors"
)

type mockListFoliosUC struct {
	result *usecases.ListFoliosResult
	err    error
	query  usecases.ListFoliosQuery
}

func (m *mockListFoliosUC) Execute(_ context.Context, query usecases.ListFoliosQuery) (*usecases.ListFoliosResult, error) {
	m.query = query
	return m.result, m.err
}

type mockGetFolioUC struct {
	result *usecases.FolioDetail
	err    error
}

func (m *mockGetFolioUC) Execute(_ context.Context, _ usecases.GetFolioQuery) (*usecases.FolioDetail, error) {
	return m.result, m.err
}

type mockCreateFolioUC struct {
	result *usecases.CreateFolioResult
	err    error
	cmd    usecases.CreateFolioCommand
}

func (m *mockCreateFolioUC) Execute(_ context.Context, cmd usecases.CreateFolioCommand) (*usecases.CreateFolioResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdateFolioUC struct {
	result *usecases.UpdateFolioResult
	err    error
}

func (m *mockUpdateFolioUC) Execute(_ context.Context, _ usecases.UpdateFolioCommand) (*usecases.UpdateFolioResult, error) {
	return m.result, m.err
}

type mockDeleteFolioUC struct {
	err error
}

func (m *mockDeleteFolioUC) Execute(_ context.Context, _ usecases.DeleteFolioCommand) error {
	return m.err
}

type mockAssignUC struct {
	result *usecases.AssignResponsibleResult
	err    error
}

func (m *mockAssignUC) Execute(_ context.Context, _ usecases.AssignResponsibleCommand) (*usecases.AssignResponsibleResult, error) {
	return m.result, m.err
}

type mockUnassignUC struct {
	err error
}

func (m *mockUnassignUC) Execute(_ context.Context, _ usecases.UnassignResponsibleCommand) error {
	return m.err
}

type mockAddResponseUC struct {
	result *usecases.AddResponseResult
	err    error
}

func (m *mockAddResponseUC) Execute(_ context.Context, _ usecases.AddResponseCommand) (*usecases.AddResponseResult, error) {
	return m.result, m.err
}

type testDeps struct {
	listFoliosUC  usecases.ListFoliosExecutor
	getFolioUC    usecases.GetFolioExecutor
	createFolioUC usecases.CreateFolioExecutor
	updateFolioUC usecases.UpdateFolioExecutor
	deleteFolioUC usecases.DeleteFolioExecutor
	assignUC      usecases.AssignResponsibleExecutor
	unassignUC    usecases.UnassignResponsibleExecutor
	addResponseUC usecases.AddResponseExecutor
}

func newTestHandler(deps testDeps) *Handler {
	return NewHandler(
		deps.listFoliosUC,
		deps.getFolioUC,
		deps.createFolioUC,
		deps.updateFolioUC,
		deps.deleteFolioUC,
		deps.assignUC,
		deps.unassignUC,
		deps.addResponseUC,
		testutil.NewMockLogger(),
	)
}

func TestHandler_CreateFolio_Success(t *testing.T) {
	mockUC := &mockCreateFolioUC{
		result: &usecases.CreateFolioResult{Folio: &domain.Folio{ID: 1, Priority: "high"}},
	}
	handler := newTestHandler(testDeps{createFolioUC: mockUC})

	body := `{
		"requester_name": "Ana Torres",
		"employee_code": "1042",
		"plant": "North",
		"pay_scheme": "weekly",
		"request_type": "payroll",
		"description": "Missing overtime hours",
		"priority": "high"
	}`
	c, w := testutil.NewTestContextWithRawBody(http.MethodPost, "/api/folios", body)

	handler.CreateFolio(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1042", mockUC.cmd.EmployeeCode)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestHandler_CreateFolio_NumericEmployeeCode(t *testing.T) {
	mockUC := &mockCreateFolioUC{
		result: &usecases.CreateFolioResult{Folio: &domain.Folio{ID: 1}},
	}
	handler := newTestHandler(testDeps{createFolioUC: mockUC})

	// employee_code as a bare JSON number must be accepted too
	body := `{
		"requester_name": "Ana Torres",
		"employee_code": 1042,
		"plant": "North",
		"pay_scheme": "weekly",
		"request_type": "payroll",
		"description": "Missing overtime hours",
		"priority": "high"
	}`
	c, w := testutil.NewTestContextWithRawBody(http.MethodPost, "/api/folios", body)

	handler.CreateFolio(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1042", mockUC.cmd.EmployeeCode)
}

func TestHandler_CreateFolio_ValidationErrorPropagates(t *testing.T) {
	mockUC := &mockCreateFolioUC{
		err: errors.NewValidationError("missing required fields", "priority"),
	}
	handler := newTestHandler(testDeps{createFolioUC: mockUC})

	c, w := testutil.NewTestContextWithRawBody(http.MethodPost, "/api/folios", `{"requester_name": "Ana"}`)

	handler.CreateFolio(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "missing required fields", resp.Error.Message)
	assert.Equal(t, "priority", resp.Error.Details)
}

func TestHandler_ListFolios_PassesFilters(t *testing.T) {
	mockUC := &mockListFoliosUC{
		result: &usecases.ListFoliosResult{
			Items: []*domain.Folio{}, Total: 0, Page: 1, PageSize: 10, TotalPages: 1,
		},
	}
	handler := newTestHandler(testDeps{listFoliosUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/folios", nil)
	testutil.SetQueryParams(c, map[string]string{"priority": "high", "page": "2", "page_size": "5"})

	handler.ListFolios(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "high", mockUC.query.Priority)
	assert.Equal(t, 2, mockUC.query.Page)
	assert.Equal(t, 5, mockUC.query.PageSize)
}

func TestHandler_GetFolio_InvalidID(t *testing.T) {
	handler := newTestHandler(testDeps{getFolioUC: &mockGetFolioUC{}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/folios/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetFolio(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetFolio_NotFound(t *testing.T) {
	mockUC := &mockGetFolioUC{err: errors.NewNotFoundError("folio not found")}
	handler := newTestHandler(testDeps{getFolioUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/folios/99", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.GetFolio(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_AssignResponsible_Conflict(t *testing.T) {
	mockUC := &mockAssignUC{err: errors.NewConflictError("user already assigned to this folio")}
	handler := newTestHandler(testDeps{assignUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/folios/3/assignees", map[string]any{"user_id": 9})
	testutil.SetURLParam(c, "id", "3")

	handler.AssignResponsible(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "user already assigned to this folio", resp.Error.Message)
}

func TestHandler_UnassignResponsible_InvalidUserID(t *testing.T) {
	handler := newTestHandler(testDeps{unassignUC: &mockUnassignUC{}})

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/folios/3/assignees/abc", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetURLParam(c, "userId", "abc")

	handler.UnassignResponsible(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "quoted string", input: `"1042"`, want: "1042"},
		{name: "bare number", input: `1042`, want: "1042"},
		{name: "empty string", input: `""`, want: ""},
		{name: "object rejected", input: `{"a":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f flexString
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(f))
		})
	}
}
