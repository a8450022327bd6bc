package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/sportsclinic/injury-clinic/internal/store"
)

type HealthHandler struct {
	store        *store.Store
	accountsFile string
	env          string
	version      string
}

func NewHealthHandler(st *store.Store, accountsFile, env, version string) *HealthHandler {
	return &HealthHandler{
		store:        st,
		accountsFile: accountsFile,
		env:          env,
		version:      version,
	}
}

type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Env     string `json:"env,omitempty"`
}

type ReadinessResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version,omitempty"`
	Env          string            `json:"env,omitempty"`
	Accounts     int               `json:"accounts"`
	SkippedLines int               `json:"skipped_lines,omitempty"`
	Dependencies map[string]string `json:"dependencies"`
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	resp := LivenessResponse{
		Status:  "ok",
		Version: h.version,
		Env:     h.env,
	}
	writeJSON(w, http.StatusOK, resp)
}

// Readiness verifies the account file's directory is writable, since every
// booking and profile update triggers a save.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)
	status := "ok"

	dir := filepath.Dir(h.accountsFile)
	probe, err := os.CreateTemp(dir, ".ready-*")
	if err != nil {
		deps["accounts_file"] = "unwritable"
		status = "error"
	} else {
		deps["accounts_file"] = "ok"
		probe.Close()
		os.Remove(probe.Name())
	}

	resp := ReadinessResponse{
		Status:       status,
		Version:      h.version,
		Env:          h.env,
		Accounts:     h.store.Len(),
		SkippedLines: h.store.SkippedLines(),
		Dependencies: deps,
	}

	httpStatus := http.StatusOK
	if status == "error" {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, resp)
}
