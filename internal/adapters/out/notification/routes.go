package notification

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"workshop/internal/core/ports"

	"gopkg.in/yaml.v3"
)

// Routes decides which channels deliver a category and how its subject line
// looks. A subject template may contain {subject}, replaced with the subject
// the notification was built with.
type Routes struct {
	Channels map[ports.NotificationCategory][]string `yaml:"channels"`
	Subjects map[ports.NotificationCategory]string   `yaml:"subjects"`
	Default  []string                                `yaml:"default"`
}

func DefaultRoutes() Routes {
	return Routes{
		Channels: map[ports.NotificationCategory][]string{
			ports.CategoryOrderCreated:   {LogChannelName},
			ports.CategoryMasterAssigned: {LogChannelName, AMQPChannelName},
			ports.CategoryOrderReady:     {LogChannelName, AMQPChannelName},
			ports.CategoryStatusChanged:  {LogChannelName},
		},
		Subjects: map[ports.NotificationCategory]string{
			ports.CategoryOrderCreated: "Workshop: {subject} accepted",
			ports.CategoryOrderReady:   "Workshop: {subject} is ready",
		},
		Default: []string{LogChannelName},
	}
}

// LoadRoutes reads routes from a YAML file. A missing file or an empty path
// yields DefaultRoutes.
func LoadRoutes(path string) (Routes, error) {
	if path == "" {
		return DefaultRoutes(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultRoutes(), nil
	}
	if err != nil {
		return Routes{}, fmt.Errorf("read notification routes %q: %w", path, err)
	}

	return ParseRoutes(data)
}

func ParseRoutes(data []byte) (Routes, error) {
	var r Routes
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Routes{}, fmt.Errorf("parse notification routes: %w", err)
	}
	if len(r.Channels) == 0 && len(r.Default) == 0 {
		return DefaultRoutes(), nil
	}
	return r, nil
}

// For returns the channels configured for a category, falling back to Default.
func (r Routes) For(category ports.NotificationCategory) []string {
	if names, ok := r.Channels[category]; ok {
		return names
	}
	return r.Default
}

func (r Routes) Subject(n ports.Notification) string {
	tmpl, ok := r.Subjects[n.Category]
	if !ok || tmpl == "" {
		return n.Subject
	}
	return strings.ReplaceAll(tmpl, "{subject}", n.Subject)
}
