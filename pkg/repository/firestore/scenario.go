package firestore

import (
	"context"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
)

type scenarioDocument struct {
	ID           int64  `firestore:"id"`
	AssessmentID string `firestore:"assessment_id"`
	ThreatID     string `firestore:"threat_id"`
	AssetName    string `firestore:"asset_name"`

	InherentLikelihood int `firestore:"inherent_likelihood"`
	InherentImpact     int `firestore:"inherent_impact"`
	Vulnerability      int `firestore:"vulnerability"`
	InherentScore      int `firestore:"inherent_score"`

	CurrentLikelihood float64 `firestore:"current_likelihood"`
	CurrentImpact     float64 `firestore:"current_impact"`
	CurrentLevel      string  `firestore:"current_level"`

	ResidualLikelihood float64 `firestore:"residual_likelihood"`
	ResidualImpact     float64 `firestore:"residual_impact"`
	ResidualLevel      string  `firestore:"residual_level"`

	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

type scenarioRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newScenarioRepository(client *firestore.Client) *scenarioRepository {
	return &scenarioRepository{client: client}
}

func (r *scenarioRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_scenarios"
	}
	return "scenarios"
}

func (r *scenarioRepository) counterCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func toScenarioDocument(s *model.RiskScenario) *scenarioDocument {
	return &scenarioDocument{
		ID:                 s.ID,
		AssessmentID:       s.AssessmentID.String(),
		ThreatID:           s.ThreatID.String(),
		AssetName:          s.AssetName,
		InherentLikelihood: s.InherentLikelihood,
		InherentImpact:     s.InherentImpact,
		Vulnerability:      s.Vulnerability,
		InherentScore:      s.InherentScore,
		CurrentLikelihood:  s.CurrentLikelihood,
		CurrentImpact:      s.CurrentImpact,
		CurrentLevel:       string(s.CurrentLevel),
		ResidualLikelihood: s.ResidualLikelihood,
		ResidualImpact:     s.ResidualImpact,
		ResidualLevel:      string(s.ResidualLevel),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func (d *scenarioDocument) toModel() *model.RiskScenario {
	return &model.RiskScenario{
		ID:                 d.ID,
		AssessmentID:       types.AssessmentID(d.AssessmentID),
		ThreatID:           types.ThreatID(d.ThreatID),
		AssetName:          d.AssetName,
		InherentLikelihood: d.InherentLikelihood,
		InherentImpact:     d.InherentImpact,
		Vulnerability:      d.Vulnerability,
		InherentScore:      d.InherentScore,
		CurrentLikelihood:  d.CurrentLikelihood,
		CurrentImpact:      d.CurrentImpact,
		CurrentLevel:       types.RiskLevel(d.CurrentLevel),
		ResidualLikelihood: d.ResidualLikelihood,
		ResidualImpact:     d.ResidualImpact,
		ResidualLevel:      types.RiskLevel(d.ResidualLevel),
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func (r *scenarioRepository) docID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (r *scenarioRepository) Create(ctx context.Context, scenario *model.RiskScenario) (*model.RiskScenario, error) {
	nextID, err := getNextID(ctx, r.client, r.counterCollection(), "scenario")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *scenario
	created.ID = nextID
	created.CreatedAt = now
	created.UpdatedAt = now

	doc := toScenarioDocument(&created)
	docRef := r.client.Collection(r.collection()).Doc(r.docID(doc.ID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create scenario", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *scenarioRepository) Get(ctx context.Context, id int64) (*model.RiskScenario, error) {
	docRef := r.client.Collection(r.collection()).Doc(r.docID(id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "scenario not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get scenario", goerr.V("id", id))
	}

	var scenarioDoc scenarioDocument
	if err := doc.DataTo(&scenarioDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal scenario", goerr.V("id", id))
	}

	return scenarioDoc.toModel(), nil
}

func (r *scenarioRepository) ListByAssessment(ctx context.Context, assessmentID types.AssessmentID) ([]*model.RiskScenario, error) {
	query := r.client.Collection(r.collection()).
		Where("assessment_id", "==", assessmentID.String()).
		OrderBy("id", firestore.Asc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var scenarios []*model.RiskScenario
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate scenarios",
				goerr.V("assessmentID", assessmentID))
		}

		var scenarioDoc scenarioDocument
		if err := doc.DataTo(&scenarioDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal scenario")
		}
		scenarios = append(scenarios, scenarioDoc.toModel())
	}

	return scenarios, nil
}

func (r *scenarioRepository) Update(ctx context.Context, scenario *model.RiskScenario) (*model.RiskScenario, error) {
	existing, err := r.Get(ctx, scenario.ID)
	if err != nil {
		return nil, err
	}

	updated := *scenario
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	doc := toScenarioDocument(&updated)
	docRef := r.client.Collection(r.collection()).Doc(r.docID(doc.ID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update scenario", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *scenarioRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	docRef := r.client.Collection(r.collection()).Doc(r.docID(id))
	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete scenario", goerr.V("id", id))
	}

	return nil
}
