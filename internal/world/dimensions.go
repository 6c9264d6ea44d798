package world

func Width(cfg Config) float64 {
	if cfg.Width > 0 {
		return cfg.Width
	}
	return DefaultWidth
}

func Height(cfg Config) float64 {
	if cfg.Height > 0 {
		return cfg.Height
	}
	return DefaultHeight
}

func Dimensions(cfg Config) (float64, float64) {
	return Width(cfg), Height(cfg)
}

// Center returns the midpoint of the combat zone, which doubles as the orbit
// center and the swarm attractor.
func Center(cfg Config) Vec2 {
	width, height := Dimensions(cfg)
	return Vec2{X: width / 2, Y: height / 2}
}

// OrbitRadius returns the configured formation ring radius.
func OrbitRadius(cfg Config) float64 {
	if cfg.OrbitRadius > 0 {
		return cfg.OrbitRadius
	}
	return DefaultOrbitRadius
}
