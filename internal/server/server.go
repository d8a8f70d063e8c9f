// Package server Herodotus
//
// Herodotus is a service which keeps the Block News social ledger and its
// reward token registry, and exposes them over HTTP.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/blocknews-net/herodotus/internal/middleware"
	"github.com/blocknews-net/herodotus/internal/service"
)

const healthTimeout = 5 * time.Second

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration, writeLimiter *mm.RateLimiter) {
	r.Use(
		mm.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Timeout(timeout),
	)

	srv := server{
		s: s,
	}

	r.Get("/health", srv.health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/users/{address}", srv.getUser)
		r.Get("/users/{address}/score/{period}", srv.getMonthlyProfileScore)
		r.Get("/users/{address}/rewarded/{period}", srv.hasBeenRewarded)
		r.Get("/users/{follower}/follows/{followee}", srv.doesFollow)
		r.Get("/publications/{id}", srv.getPublication)
		r.Get("/publications/{id}/vote/{address}", srv.getVote)
		r.Get("/categories/{category}/publications", srv.getCategoryFeed)
		r.Get("/top-users", mm.Cached(10*time.Second, srv.getTopUsers))
		r.Get("/period", srv.getPeriod)
		r.Get("/next-id", srv.getNextID)
		r.Get("/owner", srv.getOwner)
		r.Get("/sft/uri", srv.getSFTURI)
		r.Get("/sft/{address}/{period}", srv.getSFTBalance)
		r.Get("/events", srv.listEvents)

		r.Group(func(r chi.Router) {
			if writeLimiter != nil {
				r.Use(writeLimiter.Handle)
			}

			r.Post("/profile/name", srv.changeName)
			r.Post("/profile/description", srv.changeDescription)
			r.Post("/profile/picture", srv.changePicture)
			r.Post("/publications", srv.createPost)
			r.Post("/publications/{id}/repost", srv.repost)
			r.Post("/publications/{id}/upvote", srv.upvote)
			r.Post("/publications/{id}/downvote", srv.downvote)
			r.Post("/follow", srv.follow)
			r.Post("/unfollow", srv.unfollow)
			r.Post("/reward", srv.rewardTopUsers)
			r.Post("/ownership/transfer", srv.transferOwnership)
			r.Post("/ownership/renounce", srv.renounceOwnership)
		})
	})
}

func (s server) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := s.s.Ping(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	writeOK(w, http.StatusOK, OKResponse{OK: true})
}
