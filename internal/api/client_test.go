package api

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/socfin/societyctl/internal/errors"
)

func TestLoginSuccess(t *testing.T) {
	backend := newFixtureBackend()
	_, client := backend.start(t)

	resp, err := client.Login(context.Background(), "asha@example.org", "secret")
	require.NoError(t, err)

	assert.Equal(t, "good-token", resp.AccessToken)
	assert.Equal(t, "Asha Rao", resp.User.Name)
	assert.Equal(t, "asha@example.org", resp.User.Email)
}

func TestLoginSurfacesDetailMessage(t *testing.T) {
	backend := newFixtureBackend()
	_, client := backend.start(t)

	_, err := client.Login(context.Background(), "asha@example.org", "wrong")
	require.Error(t, err)

	var socErr *apperrors.SocietyError
	require.True(t, stderrors.As(err, &socErr))
	assert.Equal(t, apperrors.ErrCodeAuthUnauthorized, socErr.Code)
	assert.Equal(t, "Invalid email or password", socErr.Message)
}

func TestRegisterSurfacesValidationDetail(t *testing.T) {
	backend := newFixtureBackend()
	_, client := backend.start(t)

	_, err := client.Register(context.Background(), "Asha", "taken@example.org", "", "secret")
	require.Error(t, err)

	var socErr *apperrors.SocietyError
	require.True(t, stderrors.As(err, &socErr))
	assert.Equal(t, "Email already registered", socErr.Message)
}

func TestBearerTokenReadFreshPerCall(t *testing.T) {
	backend := newFixtureBackend()
	_, client := backend.start(t)

	current := "good-token"
	client.Tokens = tokenFunc(func() string { return current })

	_, err := client.ListSocieties(context.Background())
	require.NoError(t, err)

	// Rotate the token between calls; the wrapper must pick it up
	// without any client reconfiguration.
	backend.setToken("rotated")
	current = "rotated"

	_, err = client.ListSocieties(context.Background())
	require.NoError(t, err)

	headers := backend.authHeaders()
	require.Len(t, headers, 2)
	assert.Equal(t, "Bearer good-token", headers[0])
	assert.Equal(t, "Bearer rotated", headers[1])
}

func TestUnauthorizedInvokesTeardownOncePerCall(t *testing.T) {
	backend := newFixtureBackend()
	_, client := backend.start(t)

	client.Tokens = tokenFunc(func() string { return "stale-token" })
	teardowns := 0
	client.OnUnauthorized = func() { teardowns++ }

	_, err := client.ListSocieties(context.Background())
	require.Error(t, err)

	var socErr *apperrors.SocietyError
	require.True(t, stderrors.As(err, &socErr))
	assert.Equal(t, apperrors.ErrCodeAuthUnauthorized, socErr.Code)
	assert.Equal(t, 1, teardowns, "teardown must run exactly once per failing call")
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	backend := newFixtureBackend()
	_, client := backend.start(t)

	_, err := client.ListSocieties(context.Background())
	require.Error(t, err)

	headers := backend.authHeaders()
	require.Len(t, headers, 1)
	assert.Empty(t, headers[0])
}

func TestListTransactionsBuildsFilterQuery(t *testing.T) {
	backend := newFixtureBackend()
	_, client := backend.start(t)
	client.Tokens = tokenFunc(func() string { return "good-token" })

	txns, err := client.ListTransactions(context.Background(), "soc-1", TransactionFilter{
		Type:     TxnOutward,
		Category: "Security Salary",
	})
	require.NoError(t, err)
	require.Len(t, txns, 1)

	assert.Equal(t, "soc-1", txns[0].SocietyID)
	assert.Equal(t, TxnOutward, txns[0].Type)
	assert.Equal(t, "Security Salary", txns[0].Category)
}

func TestCreateTransactionDecimalRoundTrip(t *testing.T) {
	backend := newFixtureBackend()
	_, client := backend.start(t)
	client.Tokens = tokenFunc(func() string { return "good-token" })

	amount := decimal.RequireFromString("12500.50")
	txn, err := client.CreateTransaction(context.Background(), "soc-1", CreateTransactionRequest{
		Type:     TxnOutward,
		Category: "Lift AMC",
		Amount:   amount,
	})
	require.NoError(t, err)

	assert.True(t, txn.Amount.Equal(amount), "amount must survive the round trip exactly")
}

func TestCreateTransactionValidationError(t *testing.T) {
	backend := newFixtureBackend()
	_, client := backend.start(t)
	client.Tokens = tokenFunc(func() string { return "good-token" })

	_, err := client.CreateTransaction(context.Background(), "soc-1", CreateTransactionRequest{
		Type: TxnOutward,
	})
	require.Error(t, err)

	var socErr *apperrors.SocietyError
	require.True(t, stderrors.As(err, &socErr))
	assert.Equal(t, apperrors.ErrCodeAPIRejected, socErr.Code)
	assert.Equal(t, "Category is required", socErr.Message)
}

func TestUnreadCount(t *testing.T) {
	backend := newFixtureBackend()
	_, client := backend.start(t)
	client.Tokens = tokenFunc(func() string { return "good-token" })

	count, err := client.UnreadCount(context.Background(), "soc-1")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
