package service

import (
	"testing"

	"github.com/blockbite/tokensale/internal/tokensale/domain"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestMissingFields(t *testing.T) {
	t.Parallel()

	policy := AirDrop(0).Policy

	t.Run("empty patch reports every mandatory field in order", func(t *testing.T) {
		missing := policy.MissingFields(domain.Patch{})
		require.Equal(t, []domain.Field{
			domain.FieldEthAddress,
			domain.FieldTelegram,
			domain.FieldTwitter,
		}, missing)
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		missing := policy.MissingFields(domain.Patch{
			EthAddress: strptr(""),
			Telegram:   strptr("@someone"),
			Twitter:    strptr("@someone"),
		})
		require.Equal(t, []domain.Field{domain.FieldEthAddress}, missing)
	})

	t.Run("complete patch validates", func(t *testing.T) {
		patch := domain.Patch{
			EthAddress: strptr("0xabc"),
			Telegram:   strptr("@someone"),
			Twitter:    strptr("@someone"),
		}
		require.True(t, policy.Validate(patch))
		require.Empty(t, policy.MissingFields(patch))
	})
}

func TestMissingFieldsErrorMessage(t *testing.T) {
	t.Parallel()

	err := &MissingFieldsError{Fields: []domain.Field{
		domain.FieldFirstName,
		domain.FieldLastName,
		domain.FieldCountry,
	}}
	require.Equal(t, "missing fields: firstName, lastName, country", err.Error())
}

func TestNarrowPatch(t *testing.T) {
	t.Parallel()

	t.Run("drops fields outside the editable set", func(t *testing.T) {
		policy := PreSale().Policy

		narrowed := policy.NarrowPatch(domain.Patch{
			FirstName:  strptr("Ada"),
			EthAddress: strptr("0xabc"),
			Twitter:    strptr("@ada"),
		})

		v, ok := narrowed.Value(domain.FieldFirstName)
		require.True(t, ok)
		require.Equal(t, "Ada", v)

		_, ok = narrowed.Value(domain.FieldEthAddress)
		require.False(t, ok)
		_, ok = narrowed.Value(domain.FieldTwitter)
		require.False(t, ok)
	})

	t.Run("nil editable set passes everything through", func(t *testing.T) {
		policy := AirDrop(0).Policy

		patch := domain.Patch{
			FirstName:  strptr("Ada"),
			EthAddress: strptr("0xabc"),
		}
		require.Equal(t, patch, policy.NarrowPatch(patch))
	})
}

func TestExportView(t *testing.T) {
	t.Parallel()

	app := domain.Application{
		PrivateID:  "priv-1",
		PublicID:   "pub-1",
		Email:      "ada@example.com",
		Sponsor:    "pub-0",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Country:    "UK",
		EthAddress: "0xabc",
		Telegram:   "@ada",
		Twitter:    "@ada",
		TxHashes:   []string{"0x01"},
		IsLocked:   true,
	}

	t.Run("pre-sale view carries lock state and transactions", func(t *testing.T) {
		view := PreSale().Policy.ExportView(app)
		require.Equal(t, "priv-1", view.PrivateID)
		require.Equal(t, "pub-1", view.PublicID)
		require.Equal(t, []string{"0x01"}, view.TxHashes)
		require.NotNil(t, view.IsLocked)
		require.True(t, *view.IsLocked)

		// Internal audit dates never appear on the view type at all, and
		// fields outside the exported set stay zero.
		require.Empty(t, view.EthAddress)
	})

	t.Run("air-drop view strips lock state and transactions", func(t *testing.T) {
		view := AirDrop(0).Policy.ExportView(app)
		require.Equal(t, "0xabc", view.EthAddress)
		require.Nil(t, view.IsLocked)
		require.Empty(t, view.TxHashes)
	})
}
