package memory_test

import (
	"testing"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/packages"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newStorePackage(t *testing.T) *packages.Package {
	t.Helper()
	pkg, err := packages.NewPackage(
		kernel.NewUUID(), kernel.NewUUID(), kernel.Today(),
		decimal.NewFromFloat(1.25), "Rotterdam",
	)
	require.NoError(t, err)
	return pkg
}
