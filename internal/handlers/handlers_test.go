package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hiveproductions/hive/backend/internal/config"
	"github.com/hiveproductions/hive/backend/internal/models"
	"github.com/hiveproductions/hive/backend/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret-for-handler-testing")
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// newTestRouter wires the full resource surface against an isolated store.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret-for-handler-testing", ExpireHour: 24},
	}

	r := gin.New()

	authHandler := NewAuthHandler(db, cfg)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/verify-code", authHandler.VerifyCode)

	organizationHandler := NewOrganizationHandler(db)
	r.GET("/organizations", organizationHandler.List)
	r.POST("/organizations", organizationHandler.Create)
	r.DELETE("/organizations/:id", organizationHandler.Delete)

	projectHandler := NewProjectHandler(db)
	r.POST("/projects", projectHandler.Create)
	r.PUT("/projects/:id/key-personnel", projectHandler.ReplaceKeyPersonnel)
	r.GET("/projects/:id/key-personnel", projectHandler.ListKeyPersonnel)

	eventHandler := NewEventHandler(db)
	r.GET("/events", eventHandler.List)
	r.POST("/events", eventHandler.Create)
	r.GET("/events/:id", eventHandler.GetByID)
	r.DELETE("/events/:id", eventHandler.Delete)
	r.POST("/events/:id/personnel/:pid", eventHandler.AssignPersonnel)

	personnelHandler := NewPersonnelHandler(db)
	r.POST("/personnel", personnelHandler.Create)
	r.GET("/photographers", personnelHandler.ListPhotographers)

	shotHandler := NewShotHandler(db)
	r.POST("/shots", shotHandler.Create)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEventList_WrappedUnderEventsKey(t *testing.T) {
	r, db := newTestRouter(t)
	org := models.Organization{Name: "Org", SignupCode: "A1"}
	if err := db.Create(&org).Error; err != nil {
		t.Fatalf("seed org: %v", err)
	}
	if err := db.Create(&models.Event{Name: "Gala", Date: "2024-06-01", OrganizationID: org.ID}).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}

	w := doJSON(t, r, "GET", "/events", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}

	var body map[string][]map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	events, ok := body["events"]
	if !ok {
		t.Fatal("expected the array to be wrapped under an events key")
	}
	if len(events) != 1 {
		t.Fatalf("len = %d, expected 1", len(events))
	}
	if events[0]["status"] != "Upcoming" {
		t.Errorf("status = %v, expected the Upcoming default to be shaped in", events[0]["status"])
	}
	if events[0]["discipline"] != "Photography" {
		t.Errorf("discipline = %v, expected the Photography default", events[0]["discipline"])
	}
}

func TestOrganizationList_BareArray(t *testing.T) {
	r, db := newTestRouter(t)
	if err := db.Create(&models.Organization{Name: "Org", SignupCode: "A1"}).Error; err != nil {
		t.Fatalf("seed org: %v", err)
	}

	w := doJSON(t, r, "GET", "/organizations", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(w.Body.Bytes()), []byte("[")) {
		t.Errorf("expected a bare JSON array, got %s", w.Body.String())
	}
}

func TestErrorShape(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, "GET", "/events/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, expected 404", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Errorf("expected an error key, got %s", w.Body.String())
	}
}

func TestOrganizationDelete_RefusalIs400(t *testing.T) {
	r, db := newTestRouter(t)
	org := models.Organization{Name: "Org", SignupCode: "A1"}
	if err := db.Create(&org).Error; err != nil {
		t.Fatalf("seed org: %v", err)
	}
	if err := db.Create(&models.Project{Name: "Launch", OrganizationID: org.ID}).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}

	w := doJSON(t, r, "DELETE", "/organizations/1", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected the refusal to map to 400", w.Code)
	}
}

func TestShotCreate_NonPhotographerIs400(t *testing.T) {
	r, db := newTestRouter(t)
	org := models.Organization{Name: "Org", SignupCode: "A1"}
	db.Create(&org)
	event := models.Event{Name: "Gala", Date: "2024-06-01", OrganizationID: org.ID}
	db.Create(&event)
	producer := models.Personnel{Name: "bob", Role: "Producer", Phone: "555", Email: "b@example.com"}
	db.Create(&producer)

	w := doJSON(t, r, "POST", "/shots", map[string]interface{}{
		"image": "img", "date_created": "2024-06-01", "camera": "A7",
		"filename": "a.jpg", "event_id": event.ID, "photographer_id": producer.ID,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400 for a non-photographer", w.Code)
	}
}

func TestSignupLoginFlow(t *testing.T) {
	r, db := newTestRouter(t)
	if err := db.Create(&models.Organization{Name: "HIVE Productions", SignupCode: "HIVE2024"}).Error; err != nil {
		t.Fatalf("seed org: %v", err)
	}

	w := doJSON(t, r, "POST", "/auth/verify-code", map[string]string{"signup_code": "HIVE2024"})
	if w.Code != http.StatusOK {
		t.Fatalf("verify-code status = %d, expected 200", w.Code)
	}

	w = doJSON(t, r, "POST", "/auth/signup", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret123",
		"signup_code": "HIVE2024",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, expected 201: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "POST", "/auth/login", map[string]string{
		"email": "alice@example.com", "password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, expected 200: %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["token"] == "" || body["token"] == nil {
		t.Error("expected a token in the login response")
	}
	if _, ok := body["user"].(map[string]interface{})["password_hash"]; ok {
		t.Error("password digest must never be serialized")
	}

	w = doJSON(t, r, "POST", "/auth/login", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d, expected 401", w.Code)
	}
}

func TestKeyPersonnelReplaceFlow(t *testing.T) {
	r, db := newTestRouter(t)
	org := models.Organization{Name: "Org", SignupCode: "A1"}
	db.Create(&org)

	w := doJSON(t, r, "POST", "/projects", map[string]interface{}{
		"name": "Launch", "organization_id": org.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("project create status = %d: %s", w.Code, w.Body.String())
	}

	alice := models.Personnel{Name: "alice", Role: "Photographer", Phone: "555", Email: "a@example.com"}
	bob := models.Personnel{Name: "bob", Role: "Producer", Phone: "556", Email: "b@example.com"}
	db.Create(&alice)
	db.Create(&bob)

	w = doJSON(t, r, "PUT", "/projects/1/key-personnel", map[string]interface{}{
		"key_personnel": []map[string]interface{}{
			{"personnel_id": alice.ID, "role": "Lead"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("first replace status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "PUT", "/projects/1/key-personnel", map[string]interface{}{
		"key_personnel": []map[string]interface{}{
			{"personnel_id": bob.ID, "role": "Producer"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("second replace status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/projects/1/key-personnel", nil)
	var listed []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed) != 1 || listed[0]["name"] != "bob" {
		t.Errorf("expected only bob after the replace, got %s", w.Body.String())
	}
}

func TestEventDeleteCascade_EndToEnd(t *testing.T) {
	r, db := newTestRouter(t)
	org := models.Organization{Name: "Org", SignupCode: "A1"}
	db.Create(&org)
	event := models.Event{Name: "Gala", Date: "2024-06-01", OrganizationID: org.ID}
	db.Create(&event)
	alice := models.Personnel{Name: "alice", Role: "Photographer", Phone: "555", Email: "a@example.com"}
	db.Create(&alice)
	db.Create(&models.Shot{
		Image: "img", DateCreated: "2024-06-01", Camera: "A7", Filename: "a.jpg",
		EventID: event.ID, PhotographerID: alice.ID,
	})

	w := doJSON(t, r, "POST", "/events/1/personnel/1", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("assign status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "DELETE", "/events/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d: %s", w.Code, w.Body.String())
	}

	var shotCount int64
	db.Model(&models.Shot{}).Count(&shotCount)
	if shotCount != 0 {
		t.Errorf("shots = %d after the cascade, expected 0", shotCount)
	}

	w = doJSON(t, r, "GET", "/photographers", nil)
	var photographers []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &photographers); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(photographers) != 1 {
		t.Errorf("photographers = %d, the crew member must survive the event delete", len(photographers))
	}
}
