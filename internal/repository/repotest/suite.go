// Package repotest holds a behavioral test suite shared by every
// repository implementation. Both backends must pass it unchanged.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gracehill/ministry/internal/domain"
	"github.com/gracehill/ministry/internal/repository"
)

type Stores struct {
	Users    repository.UserRepository
	Prayers  repository.PrayerRequestRepository
	Contacts repository.ContactMessageRepository
}

// Run exercises the repository contract against a fresh set of stores per
// subtest.
func Run(t *testing.T, newStores func(t *testing.T) Stores) {
	ctx := context.Background()

	t.Run("CreatePrayerRequest_ServerAssignsFields", func(t *testing.T) {
		s := newStores(t)

		req := &domain.PrayerRequest{
			Name:    ptr("Sarah"),
			Email:   ptr("sarah@example.com"),
			Content: "pray for my family",
			// Caller-supplied values for server-owned fields must be ignored.
			Status:    domain.StatusApproved,
			CreatedAt: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, s.Prayers.Create(ctx, req))

		require.NotZero(t, req.ID)
		require.Equal(t, domain.StatusPending, req.Status)
		require.WithinDuration(t, time.Now(), req.CreatedAt, time.Minute)

		got, err := s.Prayers.GetByID(ctx, req.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "pray for my family", got.Content)
		require.Equal(t, domain.StatusPending, got.Status)
	})

	t.Run("ListPrayerRequests_NewestFirst", func(t *testing.T) {
		s := newStores(t)

		ids := make([]int, 0, 3)
		for _, content := range []string{"first", "second", "third"} {
			req := &domain.PrayerRequest{Content: content}
			require.NoError(t, s.Prayers.Create(ctx, req))
			ids = append(ids, req.ID)
			time.Sleep(5 * time.Millisecond)
		}

		requests, err := s.Prayers.List(ctx)
		require.NoError(t, err)
		require.Len(t, requests, 3)
		require.Equal(t, []int{ids[2], ids[1], ids[0]}, []int{requests[0].ID, requests[1].ID, requests[2].ID})
	})

	t.Run("ListPublicApproved_FiltersExactly", func(t *testing.T) {
		s := newStores(t)

		visible := &domain.PrayerRequest{Content: "public approved", IsPublic: true}
		require.NoError(t, s.Prayers.Create(ctx, visible))
		_, err := s.Prayers.UpdateStatus(ctx, visible.ID, domain.StatusApproved)
		require.NoError(t, err)

		publicPending := &domain.PrayerRequest{Content: "public pending", IsPublic: true}
		require.NoError(t, s.Prayers.Create(ctx, publicPending))

		publicRejected := &domain.PrayerRequest{Content: "public rejected", IsPublic: true}
		require.NoError(t, s.Prayers.Create(ctx, publicRejected))
		_, err = s.Prayers.UpdateStatus(ctx, publicRejected.ID, domain.StatusRejected)
		require.NoError(t, err)

		privateApproved := &domain.PrayerRequest{Content: "private approved"}
		require.NoError(t, s.Prayers.Create(ctx, privateApproved))
		_, err = s.Prayers.UpdateStatus(ctx, privateApproved.ID, domain.StatusApproved)
		require.NoError(t, err)

		listed, err := s.Prayers.ListPublicApproved(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		require.Equal(t, visible.ID, listed[0].ID)
	})

	t.Run("UpdateStatus_UnknownIDIsAbsent", func(t *testing.T) {
		s := newStores(t)

		got, err := s.Prayers.UpdateStatus(ctx, 9999, domain.StatusApproved)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("UpdateStatus_ChangesOnlyStatus", func(t *testing.T) {
		s := newStores(t)

		req := &domain.PrayerRequest{
			Name:          ptr("Mark"),
			Email:         ptr("mark@example.com"),
			Content:       "healing",
			IsPublic:      true,
			NeedsFollowUp: true,
		}
		require.NoError(t, s.Prayers.Create(ctx, req))

		updated, err := s.Prayers.UpdateStatus(ctx, req.ID, domain.StatusRejected)
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.Equal(t, domain.StatusRejected, updated.Status)
		require.Equal(t, req.ID, updated.ID)
		require.Equal(t, req.Name, updated.Name)
		require.Equal(t, req.Email, updated.Email)
		require.Equal(t, req.Content, updated.Content)
		require.Equal(t, req.IsPublic, updated.IsPublic)
		require.Equal(t, req.NeedsFollowUp, updated.NeedsFollowUp)
		require.True(t, req.CreatedAt.Equal(updated.CreatedAt))

		// Re-review of an already moderated request stays allowed.
		reopened, err := s.Prayers.UpdateStatus(ctx, req.ID, domain.StatusPending)
		require.NoError(t, err)
		require.NotNil(t, reopened)
		require.Equal(t, domain.StatusPending, reopened.Status)
	})

	t.Run("GetPrayerRequest_UnknownIDIsAbsent", func(t *testing.T) {
		s := newStores(t)

		got, err := s.Prayers.GetByID(ctx, 12345)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("ContactMessages_CreateAndListNewestFirst", func(t *testing.T) {
		s := newStores(t)

		ids := make([]int, 0, 2)
		for _, body := range []string{"older inquiry", "newer inquiry"} {
			msg := &domain.ContactMessage{Name: "Ana", Email: "ana@example.com", Message: body}
			require.NoError(t, s.Contacts.Create(ctx, msg))
			require.NotZero(t, msg.ID)
			require.WithinDuration(t, time.Now(), msg.CreatedAt, time.Minute)
			ids = append(ids, msg.ID)
			time.Sleep(5 * time.Millisecond)
		}

		messages, err := s.Contacts.List(ctx)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		require.Equal(t, ids[1], messages[0].ID)
		require.Equal(t, "newer inquiry", messages[0].Message)
		require.Equal(t, ids[0], messages[1].ID)
	})

	t.Run("Users_CreateAndLookup", func(t *testing.T) {
		s := newStores(t)

		user := &domain.User{Username: "admin", Password: "secret"}
		require.NoError(t, s.Users.Create(ctx, user))
		require.NotZero(t, user.ID)

		byID, err := s.Users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		require.Equal(t, "admin", byID.Username)

		byName, err := s.Users.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.NotNil(t, byName)
		require.Equal(t, user.ID, byName.ID)

		missing, err := s.Users.GetByUsername(ctx, "nobody")
		require.NoError(t, err)
		require.Nil(t, missing)
	})
}

func ptr(s string) *string {
	return &s
}
