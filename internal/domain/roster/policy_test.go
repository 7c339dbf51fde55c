package roster

import (
	"testing"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	signups := map[string]entity.Signup{
		"U1": {UserID: "U1", Day: "Monday"},
		"U2": {UserID: "U2", Day: "Monday"},
		"U3": {UserID: "U3", Day: "Tuesday"},
		"U4": {UserID: "U4", Day: domain.Unavailable},
	}

	type args struct {
		userID string
		day    domain.Day
		limit  int
	}
	tests := []struct {
		name string
		args args
		want Decision
	}{
		{
			name: "Should return AlreadyOnDay when user claims the same day",
			args: args{userID: "U1", day: "Monday", limit: 2},
			want: AlreadyOnDay,
		},
		{
			name: "Should return AlreadyOnDay for Unavailable twice",
			args: args{userID: "U4", day: domain.Unavailable, limit: 0},
			want: AlreadyOnDay,
		},
		{
			name: "Should reject a new user on a full day",
			args: args{userID: "U9", day: "Monday", limit: 2},
			want: Reject,
		},
		{
			name: "Should reject a move into a full day",
			args: args{userID: "U3", day: "Monday", limit: 2},
			want: Reject,
		},
		{
			name: "Should accept a move between days with room",
			args: args{userID: "U1", day: "Tuesday", limit: 2},
			want: Accept,
		},
		{
			name: "Should always accept Unavailable",
			args: args{userID: "U1", day: domain.Unavailable, limit: 2},
			want: Accept,
		},
		{
			name: "Should accept any claim when the day is unlimited",
			args: args{userID: "U9", day: "Monday", limit: 0},
			want: Accept,
		},
		{
			name: "Should accept on an empty day",
			args: args{userID: "U9", day: "Wednesday", limit: 1},
			want: Accept,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(signups, tt.args.userID, tt.args.day, tt.args.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCapacity_Limit(t *testing.T) {
	capacity := Capacity{Default: 2, PerDay: map[domain.Day]int{"Friday": 5}}

	assert.Equal(t, 2, capacity.Limit("Monday"))
	assert.Equal(t, 5, capacity.Limit("Friday"))
	assert.Equal(t, 0, capacity.Limit(domain.Unavailable))
}
