package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "quizgen",
			objectType:  "questions",
			identifier:  "abc123",
			paramsKey:   nil,
			expectedKey: "quizforge:quizgen:questions:abc123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "quizgen",
			objectType:  "questions",
			identifier:  "abc123",
			paramsKey:   []string{},
			expectedKey: "quizforge:quizgen:questions:abc123",
		},
		{
			name:        "with question count",
			serviceName: "quizgen",
			objectType:  "questions",
			identifier:  "abc123",
			paramsKey:   []string{"3"},
			expectedKey: "quizforge:quizgen:questions:abc123:3",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "jobs",
			objectType:  "report",
			identifier:  "01HGZ8VNRYXS8QKNJV5GRWPWDQ",
			paramsKey:   []string{"a", "b"},
			expectedKey: "quizforge:jobs:report:01HGZ8VNRYXS8QKNJV5GRWPWDQ:a_b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if got != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %q, want %q", got, tt.expectedKey)
			}
		})
	}
}
