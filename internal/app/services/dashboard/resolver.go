package dashboard

import (
	"context"
	"strings"
	"sync"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// referenceResolver turns literal references into resources. One
// resolver instance lives for the duration of a single aggregation
// call: its cache guarantees each distinct reference is fetched at
// most once, and the singleflight group collapses concurrent lookups
// of the same reference into one upstream request.
type referenceResolver struct {
	organizations contracts.OrganizationFhirClient
	locations     contracts.LocationFhirClient
	practitioners contracts.PractitionerFhirClient
	patients      contracts.PatientFhirClient
	log           *zap.Logger

	mu    sync.Mutex
	cache map[string]interface{}
	group singleflight.Group
}

func newReferenceResolver(
	organizationFhirClient contracts.OrganizationFhirClient,
	locationFhirClient contracts.LocationFhirClient,
	practitionerFhirClient contracts.PractitionerFhirClient,
	patientFhirClient contracts.PatientFhirClient,
	logger *zap.Logger,
) *referenceResolver {
	return &referenceResolver{
		organizations: organizationFhirClient,
		locations:     locationFhirClient,
		practitioners: practitionerFhirClient,
		patients:      patientFhirClient,
		log:           logger,
		cache:         make(map[string]interface{}),
	}
}

func (r *referenceResolver) Organization(ctx context.Context, ref *fhir_dto.Reference) (*fhir_dto.Organization, error) {
	value, err := r.resolve(ctx, ref, constvars.ResourceOrganization, func(ctx context.Context, id string) (interface{}, error) {
		return r.organizations.FindOrganizationByID(ctx, id)
	})
	if err != nil || value == nil {
		return nil, err
	}
	return value.(*fhir_dto.Organization), nil
}

func (r *referenceResolver) Location(ctx context.Context, ref *fhir_dto.Reference) (*fhir_dto.Location, error) {
	value, err := r.resolve(ctx, ref, constvars.ResourceLocation, func(ctx context.Context, id string) (interface{}, error) {
		return r.locations.FindLocationByID(ctx, id)
	})
	if err != nil || value == nil {
		return nil, err
	}
	return value.(*fhir_dto.Location), nil
}

func (r *referenceResolver) Practitioner(ctx context.Context, ref *fhir_dto.Reference) (*fhir_dto.Practitioner, error) {
	value, err := r.resolve(ctx, ref, constvars.ResourcePractitioner, func(ctx context.Context, id string) (interface{}, error) {
		return r.practitioners.FindPractitionerByID(ctx, id)
	})
	if err != nil || value == nil {
		return nil, err
	}
	return value.(*fhir_dto.Practitioner), nil
}

func (r *referenceResolver) Patient(ctx context.Context, ref *fhir_dto.Reference) (*fhir_dto.Patient, error) {
	value, err := r.resolve(ctx, ref, constvars.ResourcePatient, func(ctx context.Context, id string) (interface{}, error) {
		return r.patients.FindPatientByID(ctx, id)
	})
	if err != nil || value == nil {
		return nil, err
	}
	return value.(*fhir_dto.Patient), nil
}

// resolve answers nil for blank or malformed references without
// touching the network. Resolution errors are returned to the caller,
// which decides whether the reference was mandatory.
func (r *referenceResolver) resolve(ctx context.Context, ref *fhir_dto.Reference, resourceType string, fetch func(ctx context.Context, id string) (interface{}, error)) (interface{}, error) {
	if ref == nil || ref.Reference == "" {
		return nil, nil
	}
	parts := strings.SplitN(ref.Reference, "/", 2)
	if len(parts) != 2 || parts[0] != resourceType || parts[1] == "" {
		r.log.Warn("referenceResolver skipping malformed reference",
			zap.String(constvars.LoggingReferenceKey, ref.Reference),
			zap.String(constvars.LoggingResourceTypeKey, resourceType),
		)
		return nil, nil
	}
	resourceID := parts[1]
	key := resourceType + "/" + resourceID

	r.mu.Lock()
	if cached, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return cached, nil
	}
	r.mu.Unlock()

	value, err, _ := r.group.Do(key, func() (interface{}, error) {
		resolved, err := fetch(ctx, resourceID)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.cache[key] = resolved
		r.mu.Unlock()
		return resolved, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}
