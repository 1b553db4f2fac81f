package condition

func ptr[T any](v T) *T {
	return &v
}

func compareInt(a, b int) int {
	return a - b
}

func equalInt(a, b int) bool {
	return a == b
}
