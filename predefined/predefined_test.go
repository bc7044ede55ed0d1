package predefined

import "testing"

func TestParameterName(t *testing.T) {
	for i, want := range []string{"$0", "$1", "$2"} {
		if got := ParameterName(i); got != want {
			t.Errorf("ParameterName(%d) = %q, want %q", i, got, want)
		}
	}
	if got := ParameterName(12); got != "$12" {
		t.Errorf("ParameterName(12) = %q", got)
	}
}
