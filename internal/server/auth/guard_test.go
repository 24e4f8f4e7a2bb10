package auth

import "testing"

func TestCanAccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		userID  int64
		ownerID int64
		want    bool
	}{
		{"owner is allowed", 42, 42, true},
		{"other user is denied", 42, 43, false},
		{"zero ids match", 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanAccess(tc.userID, tc.ownerID); got != tc.want {
				t.Fatalf("CanAccess(%d, %d) = %v, want %v", tc.userID, tc.ownerID, got, tc.want)
			}
		})
	}
}
