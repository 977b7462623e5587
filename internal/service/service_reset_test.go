package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDetectServerReset(t *testing.T) {
	tests := []struct {
		name        string
		localCount  int
		serverCount int
		want        bool
	}{
		{name: "server wiped", localCount: 100, serverCount: 3, want: true},
		{name: "server merely behind", localCount: 100, serverCount: 60, want: false},
		{name: "both small", localCount: 4, serverCount: 3, want: false},
		{name: "empty on both sides", localCount: 0, serverCount: 0, want: false},
		{name: "fresh client rich server", localCount: 2, serverCount: 500, want: false},
		{name: "half exactly is not a reset", localCount: 10, serverCount: 5, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, records, remote := newTestService(t)

			remote.EXPECT().Probe(gomock.Any()).Return(true)
			records.EXPECT().Count(gomock.Any()).Return(test.localCount, nil)
			remote.EXPECT().FetchCount(gomock.Any()).Return(test.serverCount, nil)

			got, err := svc.DetectServerReset(context.Background())

			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestDetectServerReset_Offline(t *testing.T) {
	svc, _, remote := newTestService(t)

	remote.EXPECT().Probe(gomock.Any()).Return(false)

	_, err := svc.DetectServerReset(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerOffline)
}

func TestResetLocalCache(t *testing.T) {
	svc, records, _ := newTestService(t)

	records.EXPECT().DeleteAll(gomock.Any()).Return(nil)

	require.NoError(t, svc.ResetLocalCache(context.Background()))
	assert.False(t, svc.UsingCachedData())
}
