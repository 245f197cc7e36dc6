package utils

import (
	"net"
	"strconv"
	"testing"
)

func TestContainsFold(t *testing.T) {
	tests := []struct {
		term   string
		values []string
		want   bool
	}{
		{"", nil, true},
		{"ravi", []string{"Ravi Kumar"}, true},
		{"ROAD", []string{"x", "Village road"}, true},
		{"wheat", []string{"Paddy"}, false},
	}
	for _, tt := range tests {
		if got := ContainsFold(tt.term, tt.values...); got != tt.want {
			t.Errorf("ContainsFold(%q, %v) = %v, want %v", tt.term, tt.values, got, tt.want)
		}
	}
}

func TestPingServerUnreachable(t *testing.T) {
	// grab a free port, then release it so nothing listens there
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to reserve a port: %v", err)
	}
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
	ln.Close()

	if _, err := PingServer(port); err == nil {
		t.Error("Expected an error when nothing listens")
	}
}
