package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed advisordata
var advisordata embed.FS

type FakeAdvisorServer struct {
	s *httptest.Server
}

func NewFakeAdvisorServer() *FakeAdvisorServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Post("/recommendations", recommendationsHandler)
	})

	return &FakeAdvisorServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeAdvisorServer) Close() {
	f.s.Close()
}

func (f *FakeAdvisorServer) URL() string {
	return f.s.URL
}

func recommendationsHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "recommendations.json")
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := advisordata.ReadFile(fmt.Sprintf("advisordata/%s", name))
	if err != nil {
		log.Printf("error reading advisordata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
