package conf

import (
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/durationpb"
)

// Bootstrap is the root of configs/config.yaml.
type Bootstrap struct {
	Server    *Server    `json:"server"`
	Data      *Data      `json:"data"`
	Auth      *Auth      `json:"auth"`
	BoxOffice *BoxOffice `json:"box_office"`
}

// Server holds listener settings for both transports.
type Server struct {
	Http *Server_HTTP `json:"http"`
	Grpc *Server_GRPC `json:"grpc"`
}

type Server_HTTP struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
	// TrustForwarded makes the client IP come from the first X-Forwarded-For hop.
	TrustForwarded bool `json:"trust_forwarded"`
}

type Server_GRPC struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

// Data holds storage settings.
type Data struct {
	Database *Data_Database `json:"database"`
	Redis    *Data_Redis    `json:"redis"`
	// RatingStars are seeded into an empty rating_stars table.
	RatingStars []int32 `json:"rating_stars"`
}

type Data_Database struct {
	Driver string `json:"driver"`
	Source string `json:"source"`
}

type Data_Redis struct {
	Addr         string    `json:"addr"`
	ReadTimeout  *Duration `json:"read_timeout"`
	WriteTimeout *Duration `json:"write_timeout"`
}

type Auth struct {
	Token string `json:"token"`
}

type BoxOffice struct {
	Url        string    `json:"url"`
	ApiKey     string    `json:"api_key"`
	Timeout    *Duration `json:"timeout"`
	MaxRetries int32     `json:"max_retries"`
}

// Duration is a protobuf duration read from "1.5s" strings or a bare number of seconds.
type Duration struct {
	pb *durationpb.Duration
}

// NewDuration wraps d.
func NewDuration(d time.Duration) *Duration {
	return &Duration{pb: durationpb.New(d)}
}

// AsDuration returns zero for a nil receiver.
func (d *Duration) AsDuration() time.Duration {
	if d == nil || d.pb == nil {
		return 0
	}
	return d.pb.AsDuration()
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var seconds float64
	if err := json.Unmarshal(b, &seconds); err == nil {
		d.pb = durationpb.New(time.Duration(seconds * float64(time.Second)))
		return nil
	}
	pb := &durationpb.Duration{}
	if err := protojson.Unmarshal(b, pb); err != nil {
		return fmt.Errorf("invalid duration %s: %w", b, err)
	}
	if err := pb.CheckValid(); err != nil {
		return fmt.Errorf("invalid duration %s: %w", b, err)
	}
	d.pb = pb
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	if d.pb == nil {
		return []byte(`"0s"`), nil
	}
	return protojson.Marshal(d.pb)
}
