package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"privatemeetups/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMeetupService implements domain.MeetupService for handler tests.
type fakeMeetupService struct {
	result    *domain.CreateMeetupResult
	err       error
	lastInput *domain.CreateMeetupInput
}

func (f *fakeMeetupService) CreateMeetup(ctx context.Context, input *domain.CreateMeetupInput) (*domain.CreateMeetupResult, error) {
	f.lastInput = input
	return f.result, f.err
}

func createMeetupBody(overrides map[string]any) string {
	now := time.Now().UTC()
	body := map[string]any{
		"title":    "Rooftop drinks",
		"start_ts": now.Add(2 * time.Hour).Format(time.RFC3339),
		"end_ts":   now.Add(5 * time.Hour).Format(time.RFC3339),
		"lat":      52.52,
		"lng":      13.405,
		"host_id":  "host-1",
	}
	for k, v := range overrides {
		if v == nil {
			delete(body, k)
			continue
		}
		body[k] = v
	}
	b, _ := json.Marshal(body)
	return string(b)
}

func TestMeetupController_CreateMeetup(t *testing.T) {
	result := &domain.CreateMeetupResult{
		MeetupID: "mu-1",
		Token:    "aabbccdd00112233445566778899aabb",
		DeepLink: "meetups://join/aabbccdd00112233445566778899aabb",
	}

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:           "success",
			body:           createMeetupBody(nil),
			wantStatus:     http.StatusCreated,
			wantBodySubstr: "meetups://join/",
		},
		{
			name:           "missing title",
			body:           createMeetupBody(map[string]any{"title": nil}),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "title is required",
		},
		{
			name:           "title too long",
			body:           createMeetupBody(map[string]any{"title": fmt.Sprintf("%0201d", 1)}),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "title must be at most 200 characters",
		},
		{
			name:           "start in the past",
			body:           createMeetupBody(map[string]any{"start_ts": time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)}),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "start time cannot be in the past",
		},
		{
			name: "end before start",
			body: createMeetupBody(map[string]any{
				"end_ts": time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
			}),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "end time must be after start time",
		},
		{
			name:           "latitude out of range",
			body:           createMeetupBody(map[string]any{"lat": 91.0}),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "lat must be between -90 and 90",
		},
		{
			name:           "longitude out of range",
			body:           createMeetupBody(map[string]any{"lng": -181.0}),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "lng must be between -180 and 180",
		},
		{
			name:           "bad visibility",
			body:           createMeetupBody(map[string]any{"visibility": "secret"}),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "visibility must be private or public",
		},
		{
			name:           "ttl out of range",
			body:           createMeetupBody(map[string]any{"token_ttl_hours": 200}),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "token_ttl_hours must be between 1 and 168",
		},
		{
			name:           "missing host",
			body:           createMeetupBody(map[string]any{"host_id": nil}),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "host_id is required",
		},
		{
			name:           "bad invite email",
			body:           createMeetupBody(map[string]any{"invite_emails": []string{"not-an-email"}}),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid invite email",
		},
		{
			name:           "unknown field",
			body:           `{"title":"x","bogus":true}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "bogus",
		},
		{
			name:           "store failure",
			body:           createMeetupBody(nil),
			serviceErr:     errors.New("store down"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeMeetupService{result: result, err: tt.serviceErr}
			ctrl := NewMeetupController(testLogger(), fake)
			rr := postJSON(t, ctrl.CreateMeetup, "/create_meetup", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Contains(t, rr.Body.String(), tt.wantBodySubstr)
		})
	}
}

func TestMeetupController_CreateMeetup_Defaults(t *testing.T) {
	fake := &fakeMeetupService{result: &domain.CreateMeetupResult{MeetupID: "mu-1"}}
	ctrl := NewMeetupController(testLogger(), fake)
	rr := postJSON(t, ctrl.CreateMeetup, "/create_meetup", createMeetupBody(nil))

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, fake.lastInput)
	assert.Equal(t, domain.VisibilityPrivate, fake.lastInput.Visibility)
	assert.Zero(t, fake.lastInput.TokenTTLHours)
}
