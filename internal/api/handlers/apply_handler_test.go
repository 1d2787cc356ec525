package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/apply-service/internal/api/routes"
	"github.com/linskybing/apply-service/internal/domain/apply"
	"github.com/linskybing/apply-service/internal/repository"
	"github.com/linskybing/apply-service/internal/repository/mock"
	"github.com/linskybing/apply-service/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleBaseForm(account string) map[string]interface{} {
	return map[string]interface{}{
		"department":         "Computer Science",
		"applicant_account":  account,
		"applicant_name":     "Alice Chen",
		"applicant_phone":    "0912345678",
		"applicant_email":    account + "@example.edu",
		"tech_contact_name":  "Bob Wang",
		"tech_contact_phone": "0922333444",
		"tech_contact_email": "bob.wang@example.edu",
		"supervisor_name":    "Dr. Lee",
		"supervisor_id":      "A123456789",
		"supervisor_email":   "dr.lee@example.edu",
		"apply_date":         "2025-05-20",
		"status":             "Pending",
	}
}

func sampleDNSForm() map[string]interface{} {
	return map[string]interface{}{
		"applicant_unit":      "CS",
		"domain_name":         "cs.example.edu",
		"application_project": "Portal",
		"dns_manage_account":  "admin",
		"reason":              "test",
	}
}

func sampleCreateBody(account string) map[string]interface{} {
	return map[string]interface{}{
		"application_type": "DNS",
		"baseForm":         sampleBaseForm(account),
		"additionForm":     sampleDNSForm(),
	}
}

func createApplication(t *testing.T, r *gin.Engine, account string) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/apply/create", sampleCreateBody(account), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp apply.ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ApplicationID)
	return resp.ApplicationID
}

func TestCreateApplication(t *testing.T) {
	r, _ := testutils.SetupRouter()

	t.Run("success", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/apply/create", sampleCreateBody("s123456"), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp apply.ApplicationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.ApplicationID)
		assert.Equal(t, "Thanks for your DNS apply!", resp.Message)

		// The record is immediately retrievable under the returned id.
		got := doRequest(t, r, http.MethodGet, "/apply/"+resp.ApplicationID, nil, nil)
		assert.Equal(t, http.StatusOK, got.Code)
	})

	t.Run("ids are unique across calls", func(t *testing.T) {
		first := createApplication(t, r, "s123456")
		second := createApplication(t, r, "s123456")
		assert.NotEqual(t, first, second)
	})

	t.Run("invalid dns form", func(t *testing.T) {
		body := sampleCreateBody("s123456")
		body["additionForm"] = map[string]interface{}{"invalid": "data"}

		w := doRequest(t, r, http.MethodPost, "/apply/create", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid DNS form")
	})

	t.Run("unsupported type", func(t *testing.T) {
		for _, typ := range []string{"Office", "invalid_type"} {
			body := sampleCreateBody("s123456")
			body["application_type"] = typ

			w := doRequest(t, r, http.MethodPost, "/apply/create", body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Unsupported application type", resp["detail"])
		}
	})

	t.Run("invalid base form email", func(t *testing.T) {
		body := sampleCreateBody("s123456")
		body["baseForm"].(map[string]interface{})["applicant_email"] = "not-an-email"

		w := doRequest(t, r, http.MethodPost, "/apply/create", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing base form field", func(t *testing.T) {
		body := sampleCreateBody("s123456")
		delete(body["baseForm"].(map[string]interface{}), "department")

		w := doRequest(t, r, http.MethodPost, "/apply/create", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown status value", func(t *testing.T) {
		body := sampleCreateBody("s123456")
		body["baseForm"].(map[string]interface{})["status"] = "Archived"

		w := doRequest(t, r, http.MethodPost, "/apply/create", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid application status")
	})

	t.Run("root path also accepts creates", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/apply", sampleCreateBody("s123456"), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetApplication(t *testing.T) {
	r, _ := testutils.SetupRouter()
	id := createApplication(t, r, "s123456")

	t.Run("round trip", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/apply/"+id, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var view struct {
			Type  string                 `json:"type"`
			Base  map[string]interface{} `json:"base"`
			Extra map[string]interface{} `json:"extra"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, "DNS", view.Type)
		assert.Equal(t, "s123456", view.Base["applicant_account"])
		assert.Equal(t, "Pending", view.Base["status"])
		assert.Equal(t, "cs.example.edu", view.Extra["domain_name"])
		assert.Equal(t, "admin", view.Extra["dns_manage_account"])
	})

	t.Run("not found", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/apply/1e7d439a-d61b-43a5-a97c-50a8df120001", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail": "Application not found"}`, w.Body.String())
	})
}

func TestGetAllApplications(t *testing.T) {
	r, _ := testutils.SetupRouter()

	t.Run("empty store", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/apply/getAll", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{}`, w.Body.String())
	})

	t.Run("returns mapping keyed by id", func(t *testing.T) {
		id := createApplication(t, r, "s123456")

		w := doRequest(t, r, http.MethodGet, "/apply/getAll", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var out map[string]apply.ApplicationView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Contains(t, out, id)
		assert.Equal(t, apply.TypeDNS, out[id].Type)
	})
}

func TestGetMyApplications(t *testing.T) {
	r, _ := testutils.SetupRouter()
	mine := createApplication(t, r, "s123456")
	createApplication(t, r, "s999999")

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/apply/my-applications", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"detail": "Missing X-User-Id header"}`, w.Body.String())
	})

	t.Run("returns only own records", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/apply/my-applications", nil, map[string]string{"X-User-Id": "s123456"})
		require.Equal(t, http.StatusOK, w.Code)

		var out []apply.UserApplicationView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out, 1)
		assert.Equal(t, mine, out[0].ApplicationID)
		assert.Equal(t, apply.TypeDNS, out[0].Type)
	})

	t.Run("no records yields empty list", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/apply/my-applications", nil, map[string]string{"X-User-Id": "nobody"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestUpdateApplication(t *testing.T) {
	r, _ := testutils.SetupRouter()
	id := createApplication(t, r, "s123456")

	t.Run("success", func(t *testing.T) {
		body := sampleCreateBody("s123456")
		body["baseForm"].(map[string]interface{})["department"] = "Electrical Engineering"

		w := doRequest(t, r, http.MethodPut, "/apply/"+id, body, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp apply.ApplicationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, id, resp.ApplicationID)
		assert.Equal(t, "Application updated successfully", resp.Message)

		got := doRequest(t, r, http.MethodGet, "/apply/"+id, nil, nil)
		assert.Contains(t, got.Body.String(), "Electrical Engineering")
	})

	t.Run("not found", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPut, "/apply/missing-id", sampleCreateBody("s123456"), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail": "Application not found"}`, w.Body.String())
	})

	t.Run("invalid dns form", func(t *testing.T) {
		body := sampleCreateBody("s123456")
		body["additionForm"] = map[string]interface{}{"invalid": "data"}

		w := doRequest(t, r, http.MethodPut, "/apply/"+id, body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid DNS form")
	})

	t.Run("unsupported type", func(t *testing.T) {
		body := sampleCreateBody("s123456")
		body["application_type"] = "invalid_type"

		w := doRequest(t, r, http.MethodPut, "/apply/"+id, body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStatusTransitions(t *testing.T) {
	r, _ := testutils.SetupRouter()

	cases := []struct {
		path    string
		status  string
		message string
	}{
		{"/apply/cancel/", "Canceled", "Application canceled successfully"},
		{"/apply/approved/", "Approved", "Application approved successfully"},
		{"/apply/rejected/", "Rejected", "Application rejected successfully"},
	}

	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			id := createApplication(t, r, "s123456")

			w := doRequest(t, r, http.MethodPut, tc.path+id, nil, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var resp apply.ApplicationResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.message, resp.Message)

			// Only the status field inside the base form changes.
			got := doRequest(t, r, http.MethodGet, "/apply/"+id, nil, nil)
			var view struct {
				Base map[string]interface{} `json:"base"`
			}
			require.NoError(t, json.Unmarshal(got.Body.Bytes(), &view))
			assert.Equal(t, tc.status, view.Base["status"])
			assert.Equal(t, "s123456", view.Base["applicant_account"])
		})

		t.Run(tc.status+" not found", func(t *testing.T) {
			w := doRequest(t, r, http.MethodPut, tc.path+"1e7d439a-d61b-43a5-a97c-50a8df120001", nil, nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"detail": "Application not found"}`, w.Body.String())
		})
	}

	t.Run("transitions do not check current status", func(t *testing.T) {
		id := createApplication(t, r, "s123456")

		require.Equal(t, http.StatusOK, doRequest(t, r, http.MethodPut, "/apply/rejected/"+id, nil, nil).Code)
		// Approving an already-rejected record is allowed.
		require.Equal(t, http.StatusOK, doRequest(t, r, http.MethodPut, "/apply/approved/"+id, nil, nil).Code)
	})
}

// setupMockRouter wires the full route table over a mocked store, so storage
// failures can be injected beneath the HTTP boundary.
func setupMockRouter(t *testing.T) (*gin.Engine, *mock.MockApplyRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockApply := mock.NewMockApplyRepo(ctrl)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, &repository.Repos{Apply: mockApply})
	return r, mockApply
}

func TestStoreFailuresSurfaceAsDatabaseError(t *testing.T) {
	storeErr := errors.New("connection refused")
	wantDetail := "Database error: connection refused"

	assertDatabaseError := func(t *testing.T, w *httptest.ResponseRecorder) {
		t.Helper()
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, wantDetail, resp["detail"])
	}

	t.Run("create", func(t *testing.T) {
		r, mockApply := setupMockRouter(t)
		mockApply.EXPECT().Create(gomock.Any()).Return(storeErr)

		w := doRequest(t, r, http.MethodPost, "/apply/create", sampleCreateBody("s123456"), nil)
		assertDatabaseError(t, w)
	})

	t.Run("get one", func(t *testing.T) {
		r, mockApply := setupMockRouter(t)
		mockApply.EXPECT().FindByID("id-1").Return(apply.Application{}, storeErr)

		w := doRequest(t, r, http.MethodGet, "/apply/id-1", nil, nil)
		assertDatabaseError(t, w)
	})

	t.Run("get all", func(t *testing.T) {
		r, mockApply := setupMockRouter(t)
		mockApply.EXPECT().FindAll().Return(nil, storeErr)

		w := doRequest(t, r, http.MethodGet, "/apply/getAll", nil, nil)
		assertDatabaseError(t, w)
	})

	t.Run("my applications", func(t *testing.T) {
		r, mockApply := setupMockRouter(t)
		mockApply.EXPECT().FindByApplicant("s123456").Return(nil, storeErr)

		w := doRequest(t, r, http.MethodGet, "/apply/my-applications", nil, map[string]string{"X-User-Id": "s123456"})
		assertDatabaseError(t, w)
	})

	t.Run("update", func(t *testing.T) {
		r, mockApply := setupMockRouter(t)
		mockApply.EXPECT().Replace("id-1", gomock.Any(), gomock.Any()).Return(storeErr)

		w := doRequest(t, r, http.MethodPut, "/apply/id-1", sampleCreateBody("s123456"), nil)
		assertDatabaseError(t, w)
	})

	t.Run("status transitions", func(t *testing.T) {
		for _, path := range []string{"/apply/cancel/id-1", "/apply/approved/id-1", "/apply/rejected/id-1"} {
			r, mockApply := setupMockRouter(t)
			mockApply.EXPECT().UpdateStatus("id-1", gomock.Any()).Return(storeErr)

			w := doRequest(t, r, http.MethodPut, path, nil, nil)
			assertDatabaseError(t, w)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, mockApply := setupMockRouter(t)
		mockApply.EXPECT().Delete("id-1").Return(storeErr)

		w := doRequest(t, r, http.MethodDelete, "/apply/id-1", nil, nil)
		assertDatabaseError(t, w)
	})
}

func TestDeleteApplication(t *testing.T) {
	r, _ := testutils.SetupRouter()
	id := createApplication(t, r, "s123456")

	t.Run("delete then delete again", func(t *testing.T) {
		w := doRequest(t, r, http.MethodDelete, "/apply/"+id, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp apply.ApplicationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Application deleted successfully", resp.Message)

		again := doRequest(t, r, http.MethodDelete, "/apply/"+id, nil, nil)
		assert.Equal(t, http.StatusNotFound, again.Code)
		assert.JSONEq(t, `{"detail": "Application not found"}`, again.Body.String())
	})
}
