package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return SetupRouter(db), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerBody(username string) map[string]any {
	return map[string]any{
		"username": username,
		"password": "password123",
		"dob":      "1990-01-01",
		"height":   175,
		"weight":   70,
		"gender":   "Male",
		"goal":     "Weight Loss",
	}
}

func TestRegisterAndSignIn(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/register", registerBody("testuser"))
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}

	// Duplicate username is rejected with the canonical message.
	w = doJSON(t, r, http.MethodPost, "/register", registerBody("testuser"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != "Username is already taken." {
		t.Errorf("error = %v", resp["error"])
	}

	w = doJSON(t, r, http.MethodPost, "/signin", map[string]any{
		"username": "testuser",
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signin status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestSignIn_IndistinguishableFailures(t *testing.T) {
	r, _ := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/register", registerBody("signinuser"))

	wrongPass := doJSON(t, r, http.MethodPost, "/signin", map[string]any{
		"username": "signinuser",
		"password": "wrongpassword",
	})
	unknownUser := doJSON(t, r, http.MethodPost, "/signin", map[string]any{
		"username": "nonexistentuser",
		"password": "somepassword",
	})

	if wrongPass.Code != http.StatusBadRequest || unknownUser.Code != http.StatusBadRequest {
		t.Fatalf("statuses = %d, %d, want 400, 400", wrongPass.Code, unknownUser.Code)
	}
	// The two failure modes must produce byte-identical bodies.
	if wrongPass.Body.String() != unknownUser.Body.String() {
		t.Errorf("bodies differ: %q vs %q", wrongPass.Body.String(), unknownUser.Body.String())
	}
}

func TestLogActivity_UpsertOverHTTP(t *testing.T) {
	r, db := newTestRouter(t)

	body := map[string]any{
		"username":        "alice",
		"logDate":         "2024-06-15",
		"steps":           5000,
		"workout":         "Cardio Workouts",
		"workoutDuration": 30,
		"sleep":           7.5,
	}
	w := doJSON(t, r, http.MethodPost, "/log-activity", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("first log status = %d, body %s", w.Code, w.Body.String())
	}

	body["steps"] = 9000
	w = doJSON(t, r, http.MethodPost, "/log-activity", body)
	if w.Code != http.StatusOK {
		t.Fatalf("second log status = %d, body %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.DailyLog{}).Where("username = ?", "alice").Count(&count)
	if count != 1 {
		t.Errorf("log count = %d, want 1", count)
	}
	var log models.DailyLog
	db.Where("username = ?", "alice").First(&log)
	if log.Steps != 9000 {
		t.Errorf("steps = %d, want 9000", log.Steps)
	}
}

func TestLogActivity_RejectsBadEnum(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/log-activity", map[string]any{
		"username":        "alice",
		"steps":           5000,
		"workout":         "Underwater Basket Weaving",
		"workoutDuration": 30,
		"sleep":           7.5,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestLogWeight_Bounds(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []struct {
		weight float64
		want   int
	}{
		{29.9, http.StatusBadRequest},
		{30, http.StatusCreated},
		{300, http.StatusOK}, // same day, updates the row logged above
		{300.1, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := doJSON(t, r, http.MethodPost, "/log-weight", map[string]any{
			"username": "bob",
			"logDate":  "2024-06-15",
			"weight":   tc.weight,
		})
		if w.Code != tc.want {
			t.Errorf("weight %v: status = %d, want %d", tc.weight, w.Code, tc.want)
		}
	}
}

func TestDeleteUserAccount_Cascades(t *testing.T) {
	r, db := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/register", registerBody("deluser"))
	doJSON(t, r, http.MethodPost, "/log-activity", map[string]any{
		"username":        "deluser",
		"logDate":         "2024-06-15",
		"steps":           100,
		"workout":         "None",
		"workoutDuration": 0,
		"sleep":           8,
	})

	w := doJSON(t, r, http.MethodDelete, "/delete-user-account?username=deluser", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body %s", w.Code, w.Body.String())
	}

	var users, logs int64
	db.Model(&models.User{}).Where("username = ?", "deluser").Count(&users)
	db.Model(&models.DailyLog{}).Where("username = ?", "deluser").Count(&logs)
	if users != 0 || logs != 0 {
		t.Errorf("after delete: users=%d logs=%d, want 0/0", users, logs)
	}

	w = doJSON(t, r, http.MethodDelete, "/delete-user-account?username=ghost", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown user status = %d, want 404", w.Code)
	}
}

func TestNutrientAverages_NoDataOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{"/get-weekly-nutrients", "/get-monthly-nutrients"} {
		w := doJSON(t, r, http.MethodGet, path+"?username=nobody", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["success"] != false {
			t.Errorf("%s success = %v, want false", path, resp["success"])
		}
		if _, hasAverages := resp["averages"]; hasAverages {
			t.Errorf("%s carries averages despite no data", path)
		}
	}
}

func TestSetNutrientGoals_PartialUpdate(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/set-nutrient-goals", map[string]any{
		"username":     "carol",
		"caloriesGoal": 2200,
		"proteinGoal":  120,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create goals status = %d, body %s", w.Code, w.Body.String())
	}

	// Updating only calories must keep the protein goal.
	w = doJSON(t, r, http.MethodPost, "/set-nutrient-goals", map[string]any{
		"username":     "carol",
		"caloriesGoal": 2000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update goals status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/get-nutrient-goals?username=carol", nil)
	var resp struct {
		Goals models.NutrientGoals `json:"goals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Goals.CaloriesGoal != 2000 {
		t.Errorf("caloriesGoal = %v, want 2000", resp.Goals.CaloriesGoal)
	}
	if resp.Goals.ProteinGoal != 120 {
		t.Errorf("proteinGoal = %v, want 120 (unset field overwritten)", resp.Goals.ProteinGoal)
	}
}

func TestWorkoutCap_OverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	for i := 1; i <= models.MaxWorkoutsPerUser; i++ {
		w := doJSON(t, r, http.MethodPost, "/log-workout", map[string]any{
			"username":  "dave",
			"name":      fmt.Sprintf("Plan %d", i),
			"exercises": "Squats",
			"duration":  45,
			"intensity": "Medium",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("workout %d status = %d, body %s", i, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodPost, "/log-workout", map[string]any{
		"username":  "dave",
		"name":      "Plan 11",
		"exercises": "Squats",
		"duration":  45,
		"intensity": "Medium",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("11th workout status = %d, want 400", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != "A user can have a maximum of 10 workout plans." {
		t.Errorf("error = %v", resp["error"])
	}
}

func TestGetDailyLog_MissingIsSoftMiss(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/get-daily-log?username=erin&date=2024-06-15", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["success"] != false || resp["message"] != "No log for this date." {
		t.Errorf("body = %v", resp)
	}
}
