// Package loader reads item templates from YAML files and syncs them into
// the forge.
package loader

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/errors"
	"github.com/KirkDiggler/itemforge/internal/orchestrators/forge"
)

// document is one YAML document: either a single template or a list
type document struct {
	Templates        []*itemdef.Template `yaml:"templates"`
	itemdef.Template `yaml:",inline"`
}

// LoadFile parses every template in a YAML file. A file may hold several
// documents separated by "---"; each is either a template or a
// "templates:" list.
func LoadFile(path string) ([]*itemdef.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("template file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	templates, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return templates, nil
}

// Parse decodes templates from YAML. Unknown keys are rejected.
func Parse(data []byte) ([]*itemdef.Template, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var templates []*itemdef.Template
	for {
		var doc document
		err := dec.Decode(&doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid template yaml: %v", err)
		}

		if len(doc.Templates) > 0 {
			if doc.Template.Material != "" || doc.Template.ID != "" {
				return nil, errors.InvalidArgument("document mixes a template with a templates list")
			}
			for _, t := range doc.Templates {
				if t != nil {
					templates = append(templates, t)
				}
			}
			continue
		}

		if doc.Template.ID == "" && doc.Template.Material == "" {
			continue
		}
		t := doc.Template
		templates = append(templates, &t)
	}

	return templates, nil
}

// LoadDir loads every .yaml and .yml file in dir in name order. Every
// template must carry an ID and IDs must be unique across the directory.
func LoadDir(dir string) ([]*itemdef.Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("template directory %s not found", dir)
		}
		return nil, errors.Wrapf(err, "failed to read %s", dir)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	seen := make(map[string]string)
	var all []*itemdef.Template
	for _, f := range files {
		templates, err := LoadFile(f)
		if err != nil {
			return nil, err
		}
		for i, t := range templates {
			if t.ID == "" {
				return nil, errors.InvalidArgumentf("%s: template %d has no id", f, i)
			}
			if prev, ok := seen[t.ID]; ok {
				return nil, errors.AlreadyExistsf("%s: template %q already defined in %s", f, t.ID, prev)
			}
			seen[t.ID] = f
			all = append(all, t)
		}
	}

	return all, nil
}

// SyncResult counts what Sync did
type SyncResult struct {
	Created int
	Updated int
}

// Sync creates each template, replacing any stored template with the same ID
func Sync(ctx context.Context, svc forge.Service, templates []*itemdef.Template) (*SyncResult, error) {
	if svc == nil {
		return nil, errors.InvalidArgument("forge service is required")
	}

	result := &SyncResult{}
	for _, t := range templates {
		_, err := svc.CreateTemplate(ctx, &forge.CreateTemplateInput{Template: t})
		if err == nil {
			result.Created++
			continue
		}
		if !errors.IsAlreadyExists(err) {
			return result, errors.Wrapf(err, "failed to seed template %s", t.ID)
		}

		if _, err := svc.UpdateTemplate(ctx, &forge.UpdateTemplateInput{Template: t}); err != nil {
			return result, errors.Wrapf(err, "failed to refresh template %s", t.ID)
		}
		result.Updated++
	}

	slog.InfoContext(ctx, "seeded templates",
		"created", result.Created,
		"updated", result.Updated)

	return result, nil
}
