package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracehill/ministry/internal/repository/memory"
	"github.com/gracehill/ministry/internal/service"
)

func TestContactSubmit_StoresAndNotifies(t *testing.T) {
	svc := service.NewContactMessageService(memory.NewContactMessageRepo())
	notifier := &fakeNotifier{}
	svc.SetNotifier(notifier)

	msg, err := svc.Submit(context.Background(), service.SubmitContactMessageInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "service times?",
	})
	require.NoError(t, err)

	assert.NotZero(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
	assert.Equal(t, []int{msg.ID}, notifier.contacts)

	messages, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "service times?", messages[0].Message)
}
