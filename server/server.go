// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tss-gg18/signer/config"
)

// Server wires the KV store, signup counters, task gate, token checker and
// counterparty spawner behind a gin router implementing the
// /get /set /signupkeygen /signupsign contract. Lib: gin-gonic/gin, the
// HTTP framework other_examples' ari-mpc-tss-wallets-service is built on.
type Server struct {
	store   *Store
	tasks   *TaskClient
	auth    *TokenChecker
	spawner *Spawner
	params  *config.Params

	counterpartyScript string
}

// New assembles a Server. counterpartyScript is the path passed to the
// spawned server-side counterparty process.
func New(params *config.Params, taskServiceURL, counterpartyScript string, spawnQueueDepth int) *Server {
	return &Server{
		store:              NewStore(),
		tasks:              NewTaskClient(taskServiceURL),
		auth:               NewTokenChecker(taskServiceURL),
		spawner:            NewSpawner(spawnQueueDepth),
		params:             params,
		counterpartyScript: counterpartyScript,
	}
}

// Router builds the gin engine implementing the signaling server's HTTP
// surface, with CORS open the way original_source/examples/gg18_sm_manager.rs
// configures rocket_cors (AllowedOrigins::all, GET/POST/PATCH, credentials on).
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(s.authMiddleware())

	r.POST("/get", s.handleGet)
	r.POST("/set", s.handleSet)
	r.POST("/signupkeygen", s.handleSignupKeygen)
	r.POST("/signupsign", s.handleSignupSign)

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// authMiddleware gates every route behind a bearer token validated by the
// external check_token collaborator, mirroring gg18_sm_manager.rs's ApiKey
// request guard.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || !s.auth.Check(c.Request.Context(), token) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Set("token", token)
		c.Next()
	}
}

func (s *Server) handleGet(c *gin.Context) {
	var idx Index
	if err := c.ShouldBindJSON(&idx); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	v, ok := s.store.Get(idx.Key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	c.JSON(http.StatusOK, Entry{Key: idx.Key, Value: v})
}

func (s *Server) handleSet(c *gin.Context) {
	var e Entry
	if err := c.ShouldBindJSON(&e); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	s.store.Set(e.Key, e.Value)
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) handleSignupKeygen(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	token, _ := c.Get("token")
	su, err := s.SignupKeygen(c.Request.Context(), req.TaskID, token.(string), s.params.Parties)
	if err != nil {
		writeSignupError(c, err)
		return
	}
	c.JSON(http.StatusOK, su)
}

func (s *Server) handleSignupSign(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	token, _ := c.Get("token")
	su, err := s.SignupSign(c.Request.Context(), req.TaskID, token.(string), s.params.Threshold)
	if err != nil {
		writeSignupError(c, err)
		return
	}
	c.JSON(http.StatusOK, su)
}

func writeSignupError(c *gin.Context, err error) {
	if err == ErrUnauthorized {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	c.AbortWithStatus(http.StatusInternalServerError)
}
