package tests

import (
	"io"
	"testing"
	"time"

	"tiffin-finder/kitchen-svc/internal/domain"
	"tiffin-finder/token"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testIssuer() *token.Issuer {
	return token.NewIssuer("test-secret", time.Hour, 24*time.Hour)
}

func bearer(t *testing.T, issuer *token.Issuer, userID uuid.UUID, role domain.Role) string {
	t.Helper()
	pair, err := issuer.Issue(userID, string(role))
	require.NoError(t, err)
	return "Bearer " + pair.AccessToken
}

func approvedKitchen(owner uuid.UUID) *domain.Kitchen {
	return &domain.Kitchen{
		ID:          uuid.New(),
		UserID:      owner,
		Name:        "Maa ki Rasoi",
		CuisineType: "North Indian",
		IsActive:    true,
		Status:      domain.KitchenApproved,
		Address: domain.Address{
			Street:      "123 Gali No. 5, Krishna Nagar",
			City:        "Delhi",
			State:       "Delhi",
			ZipCode:     "110051",
			Coordinates: &domain.Coordinates{Lat: 28.6139, Lng: 77.2090},
		},
	}
}
