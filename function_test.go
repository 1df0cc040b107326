package function

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLTILaunchUninitialized(t *testing.T) {
	// Arrange
	saved := launchHandler
	launchHandler = nil
	defer func() { launchHandler = saved }()

	req := httptest.NewRequest("POST", "/", nil)
	w := httptest.NewRecorder()

	// Act
	LTILaunch(w, req)

	// Assert
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}

func TestLTILaunchDelegates(t *testing.T) {
	// Arrange
	saved := launchHandler
	called := false
	launchHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	defer func() { launchHandler = saved }()

	w := httptest.NewRecorder()

	// Act
	LTILaunch(w, httptest.NewRequest("POST", "/", nil))

	// Assert
	if !called || w.Code != http.StatusOK {
		t.Errorf("Expected delegation to the launch handler, got %d", w.Code)
	}
}
