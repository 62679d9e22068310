package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.New(cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", SessionHeader},
		ExposedHeaders:   []string{SessionHeader},
		AllowCredentials: true,
	}).Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Delivery Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
