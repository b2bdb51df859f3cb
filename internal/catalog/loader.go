package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/osse101/NeoCity_Go/internal/domain"
)

// Seed data file names inside the embedded data directory
const (
	JobsFile  = "data/jobs.yaml"
	ZonesFile = "data/zones.yaml"
)

//go:embed data/*.yaml
var seedFS embed.FS

type jobRecord struct {
	Title        string         `yaml:"title" validate:"required"`
	Type         string         `yaml:"type" validate:"required,jobtype"`
	Salary       int            `yaml:"salary" validate:"gte=0"`
	Requirements map[string]int `yaml:"requirements" validate:"dive,keys,required,endkeys,gte=0,lte=100"`
}

type jobsDocument struct {
	Jobs []jobRecord `yaml:"jobs" validate:"required,min=1,unique=Title,dive"`
}

type zoneRecord struct {
	Name        string   `yaml:"name" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Events      []string `yaml:"events"`
}

type zonesDocument struct {
	Zones []zoneRecord `yaml:"zones" validate:"required,min=1,unique=Name,dive"`
}

// Jobs returns the job catalog seed in file order
func Jobs() ([]domain.Job, error) {
	data, err := seedFS.ReadFile(JobsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", JobsFile, err)
	}
	return ParseJobs(data)
}

// Zones returns the zone catalog seed in file order
func Zones() ([]domain.Zone, error) {
	data, err := seedFS.ReadFile(ZonesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ZonesFile, err)
	}
	return ParseZones(data)
}

// ParseJobs decodes and validates a jobs YAML document
func ParseJobs(data []byte) ([]domain.Job, error) {
	var doc jobsDocument
	if err := decodeStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: jobs: %v", domain.ErrInvalidCatalog, err)
	}
	if err := GetValidator().ValidateStruct(doc); err != nil {
		return nil, validationError("jobs", err)
	}

	jobs := make([]domain.Job, 0, len(doc.Jobs))
	for _, r := range doc.Jobs {
		reqs := make(map[string]int, len(r.Requirements))
		for k, v := range r.Requirements {
			reqs[k] = v
		}
		jobs = append(jobs, domain.Job{
			Title:        r.Title,
			Type:         domain.JobType(r.Type),
			Salary:       r.Salary,
			Requirements: reqs,
		})
	}
	return jobs, nil
}

// ParseZones decodes and validates a zones YAML document
func ParseZones(data []byte) ([]domain.Zone, error) {
	var doc zonesDocument
	if err := decodeStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: zones: %v", domain.ErrInvalidCatalog, err)
	}
	if err := GetValidator().ValidateStruct(doc); err != nil {
		return nil, validationError("zones", err)
	}

	zones := make([]domain.Zone, 0, len(doc.Zones))
	for _, r := range doc.Zones {
		zones = append(zones, domain.Zone{
			Name:        r.Name,
			Description: r.Description,
			Events:      append([]string(nil), r.Events...),
		})
	}
	return zones, nil
}

// decodeStrict rejects unknown keys so typos in seed files fail loudly
func decodeStrict(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty document")
		}
		return err
	}
	return nil
}
