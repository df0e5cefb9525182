//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"testing"
	"time"

	"internhub/internal/core/discovery"
	perr "internhub/internal/platform/errors"
	"internhub/internal/platform/store"
	"internhub/internal/platform/testkit/pgtest"
	"internhub/internal/services/api/internships/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()

	st := pgtest.Store(t)
	ctx := context.Background()
	require.NoError(t, EnsureSchema(ctx, st.PG))
	require.NoError(t, EnsureSchema(ctx, st.PG), "schema is idempotent")
	return st
}

func posting(id string, status domain.Status, closes time.Time) domain.Posting {
	return domain.Posting{
		Listing: discovery.Listing{
			ID:           id,
			Title:        "Intern " + id,
			Company:      "Acme",
			Domain:       discovery.DomainDesign,
			LocationMode: discovery.ModeHybrid,
			Stipend:      12000,
			Duration:     discovery.DurationShort,
			Skills:       []string{"Figma", "UI/UX Design"},
			Posted:       discovery.PostedAgo("3d ago"),
			ClosesAt:     &closes,
		},
		Status:       status,
		ContactEmail: "hr@acme.example",
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestPG_Lifecycle_Integration(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	r := NewPG().Bind(st.PG)

	future := time.Now().Add(30 * 24 * time.Hour).UTC().Truncate(time.Second)
	past := time.Now().Add(-24 * time.Hour).UTC().Truncate(time.Second)

	require.NoError(t, r.Insert(ctx, posting("a", domain.StatusPending, future)))
	require.NoError(t, r.Insert(ctx, posting("b", domain.StatusApproved, past)))
	require.NoError(t, r.Insert(ctx, posting("c", domain.StatusRejected, future)))

	err := r.Insert(ctx, posting("a", domain.StatusPending, future))
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDuplicateKey), "%v", err)

	got, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"Figma", "UI/UX Design"}, got.Skills)
	assert.Equal(t, "3d ago", got.Posted.Ago)
	assert.Nil(t, got.VerifiedBy)

	_, err = r.Get(ctx, "zzz")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))

	cands, err := r.Candidates(ctx)
	require.NoError(t, err)
	assert.Len(t, cands, 2)

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, r.Review(ctx, "a", domain.StatusApproved, discovery.Verifier{College: "IIT Delhi", VerifiedAt: at, Rating: 4, Comment: "solid"}))
	got, err = r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
	assert.True(t, got.Verified)
	require.NotNil(t, got.VerifiedBy)
	assert.Equal(t, "IIT Delhi", got.VerifiedBy.College)
	assert.Equal(t, 4, got.VerifiedBy.Rating)
	assert.True(t, got.VerifiedBy.VerifiedAt.Equal(at))

	err = r.Review(ctx, "a", domain.StatusRejected, discovery.Verifier{College: "X", Rating: 1})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound), "only pending postings can be reviewed")

	n, err := r.CloseExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	pend, err := r.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pend)

	up := posting("b", domain.StatusApproved, future)
	up.Title = "Renamed"
	require.NoError(t, r.Upsert(ctx, up))
	got, err = r.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, domain.StatusApproved, got.Status)
}
