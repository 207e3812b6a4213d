package std

// Regenerates std.go and std_gen.go from the sources under src/.
//go:generate go run ../cmd generate src std_gen.go std.go
