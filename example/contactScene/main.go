// Command contactScene loads a scene of box pressure meshes from a YAML
// file and reports the contact wrench between every body pair.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/aries-robot/distance3d"
	"github.com/aries-robot/distance3d/geom"
)

// Config describes the scene and the logging setup.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Bodies  []BodyConfig  `yaml:"bodies"`
	Details bool          `yaml:"details"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// BodyConfig describes one box body.
type BodyConfig struct {
	Name      string     `yaml:"name"`
	Position  [3]float64 `yaml:"position"`
	AxisAngle [4]float64 `yaml:"axis_angle"` // unit axis x, y, z then angle in radians
	Size      [3]float64 `yaml:"size"`
	Potential float64    `yaml:"potential"`
}

// Default returns a two-cube scene overlapping along x.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Bodies: []BodyConfig{
			{
				Name:      "left",
				Position:  [3]float64{0, 0, 0},
				AxisAngle: [4]float64{0, 0, 1, 0},
				Size:      [3]float64{1, 1, 1},
				Potential: 1.0,
			},
			{
				Name:      "right",
				Position:  [3]float64{0.9, 0, 0},
				AxisAngle: [4]float64{0, 0, 1, 0},
				Size:      [3]float64{1, 1, 1},
				Potential: 1.0,
			},
		},
		Details: false,
	}
}

func loadConfig(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " ",
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), lvl)
	return zap.New(core), nil
}

func buildMesh(body BodyConfig) *distance3d.Mesh {
	transform := geom.Transform{
		Position: mgl64.Vec3{body.Position[0], body.Position[1], body.Position[2]},
		Rotation: mgl64.QuatRotate(body.AxisAngle[3],
			mgl64.Vec3{body.AxisAngle[0], body.AxisAngle[1], body.AxisAngle[2]}.Normalize()),
	}
	size := mgl64.Vec3{body.Size[0], body.Size[1], body.Size[2]}
	return distance3d.NewBoxMesh(transform, size, body.Potential)
}

func main() {
	configPath := flag.String("config", "scene.yaml", "path to the scene file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	meshes := make([]*distance3d.Mesh, len(cfg.Bodies))
	for i, body := range cfg.Bodies {
		meshes[i] = buildMesh(body)
		logger.Info("body loaded",
			zap.String("name", body.Name),
			zap.Float64("volume", meshes[i].Volume()),
			zap.Any("center_of_mass", meshes[i].CenterOfMass()),
		)
	}

	opts := distance3d.Options{Details: cfg.Details}
	for i := 0; i < len(meshes); i++ {
		for j := i + 1; j < len(meshes); j++ {
			result, err := distance3d.ContactForces(meshes[i], meshes[j], opts)
			if err != nil {
				logger.Error("contact computation failed",
					zap.String("first", cfg.Bodies[i].Name),
					zap.String("second", cfg.Bodies[j].Name),
					zap.Error(err),
				)
				continue
			}

			if !result.Intersects {
				logger.Info("no contact",
					zap.String("first", cfg.Bodies[i].Name),
					zap.String("second", cfg.Bodies[j].Name),
				)
				continue
			}

			logger.Info("contact",
				zap.String("first", cfg.Bodies[i].Name),
				zap.String("second", cfg.Bodies[j].Name),
				zap.Float64("depth", result.Depth),
				zap.Any("normal", result.Normal),
				zap.Any("point", result.Point),
				zap.Any("force_on_second", result.Wrench12.Force),
				zap.Any("force_on_first", result.Wrench21.Force),
			)

			if result.Details == nil {
				continue
			}
			for index, c := range result.Details.First {
				logger.Debug("tetrahedron contribution",
					zap.String("body", cfg.Bodies[i].Name),
					zap.Int("tetrahedron", index),
					zap.Float64("area", c.Area),
					zap.Float64("pressure", c.Pressure),
					zap.Float64("contribution", c.Contribution),
				)
			}
			for index, c := range result.Details.Second {
				logger.Debug("tetrahedron contribution",
					zap.String("body", cfg.Bodies[j].Name),
					zap.Int("tetrahedron", index),
					zap.Float64("area", c.Area),
					zap.Float64("pressure", c.Pressure),
					zap.Float64("contribution", c.Contribution),
				)
			}
		}
	}
}
