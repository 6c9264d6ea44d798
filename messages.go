package server

// Wire types shared by the join handshake and the per-tick state broadcast.

type Ship struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	VX       float64 `json:"vx"`
	VY       float64 `json:"vy"`
	Behavior string  `json:"behavior"`
	Faction  string  `json:"faction"`
}

type Turret struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type Shot struct {
	ID       string  `json:"id"`
	OriginX  float64 `json:"originX"`
	OriginY  float64 `json:"originY"`
	AimX     float64 `json:"aimX"`
	AimY     float64 `json:"aimY"`
	TargetID string  `json:"targetId"`
}

type PredictionSample struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence"`
}

type Prediction struct {
	ShipID         string             `json:"shipId"`
	Behavior       string             `json:"behavior"`
	EffectiveRange float64            `json:"effectiveRange"`
	Samples        []PredictionSample `json:"samples"`
}

type zoneInfo struct {
	Seed        string  `json:"seed"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	OrbitRadius float64 `json:"orbitRadius"`
}

type joinResponse struct {
	ID      string   `json:"id"`
	Zone    zoneInfo `json:"zone"`
	Ships   []Ship   `json:"ships"`
	Turrets []Turret `json:"turrets"`
}

type stateMessage struct {
	Type        string       `json:"type"`
	Tick        uint64       `json:"tick"`
	ServerTime  int64        `json:"serverTime"`
	Ships       []Ship       `json:"ships"`
	Turrets     []Turret     `json:"turrets"`
	Shots       []Shot       `json:"shots"`
	Predictions []Prediction `json:"predictions"`
}

type clientMessage struct {
	Type   string `json:"type"`
	SentAt int64  `json:"sentAt"`
}

type heartbeatMessage struct {
	Type       string `json:"type"`
	ServerTime int64  `json:"serverTime"`
	ClientTime int64  `json:"clientTime"`
	RTTMillis  int64  `json:"rtt"`
}
