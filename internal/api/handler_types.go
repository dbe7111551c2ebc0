package api

import (
	"time"

	"github.com/chronicare/copilot/internal/services"
	"github.com/chronicare/copilot/internal/store"
	"github.com/golang-jwt/jwt/v5"
)

type Handler struct {
	stores        *store.Selector
	ledger        *services.AdherenceLedger
	symptoms      *services.SymptomService
	conversations *services.ConversationService
	location      *time.Location
	secretKey     []byte
	elevenLabsKey string
	pendingMFA    *mfaTokenStore
}

const (
	sessionTokenTTL = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type sessionClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func NewHandler(stores *store.Selector, secretKey string, location *time.Location, elevenLabsKey string) *Handler {
	if location == nil {
		location = time.UTC
	}
	symptoms := services.NewSymptomService(stores, location)
	return &Handler{
		stores:        stores,
		ledger:        services.NewAdherenceLedger(stores, location),
		symptoms:      symptoms,
		conversations: services.NewConversationService(symptoms),
		location:      location,
		secretKey:     []byte(secretKey),
		elevenLabsKey: elevenLabsKey,
		pendingMFA:    newMFATokenStore(),
	}
}
