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

type controlDocument struct {
	ID           int64  `firestore:"id"`
	ScenarioID   int64  `firestore:"scenario_id"`
	AssessmentID string `firestore:"assessment_id"`
	Name         string `firestore:"name"`
	Type         string `firestore:"type"`

	Effectiveness          int    `firestore:"effectiveness"`
	TreatmentEffectiveness int    `firestore:"treatment_effectiveness"`
	PrimaryEffect          string `firestore:"primary_effect"`

	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

type controlRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newControlRepository(client *firestore.Client) *controlRepository {
	return &controlRepository{client: client}
}

func (r *controlRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_controls"
	}
	return "controls"
}

func (r *controlRepository) counterCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func toControlDocument(c *model.Control) *controlDocument {
	return &controlDocument{
		ID:                     c.ID,
		ScenarioID:             c.ScenarioID,
		AssessmentID:           c.AssessmentID.String(),
		Name:                   c.Name,
		Type:                   string(c.Type),
		Effectiveness:          c.Effectiveness,
		TreatmentEffectiveness: c.TreatmentEffectiveness,
		PrimaryEffect:          string(c.PrimaryEffect),
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

func (d *controlDocument) toModel() *model.Control {
	return &model.Control{
		ID:                     d.ID,
		ScenarioID:             d.ScenarioID,
		AssessmentID:           types.AssessmentID(d.AssessmentID),
		Name:                   d.Name,
		Type:                   types.ControlType(d.Type),
		Effectiveness:          d.Effectiveness,
		TreatmentEffectiveness: d.TreatmentEffectiveness,
		PrimaryEffect:          types.PrimaryEffect(d.PrimaryEffect),
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}
}

func (r *controlRepository) docID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (r *controlRepository) Create(ctx context.Context, control *model.Control) (*model.Control, error) {
	nextID, err := getNextID(ctx, r.client, r.counterCollection(), "control")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *control
	created.ID = nextID
	created.CreatedAt = now
	created.UpdatedAt = now

	doc := toControlDocument(&created)
	docRef := r.client.Collection(r.collection()).Doc(r.docID(doc.ID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create control", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *controlRepository) Get(ctx context.Context, id int64) (*model.Control, error) {
	docRef := r.client.Collection(r.collection()).Doc(r.docID(id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "control not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get control", goerr.V("id", id))
	}

	var controlDoc controlDocument
	if err := doc.DataTo(&controlDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal control", goerr.V("id", id))
	}

	return controlDoc.toModel(), nil
}

func (r *controlRepository) ListByScenario(ctx context.Context, scenarioID int64) ([]*model.Control, error) {
	query := r.client.Collection(r.collection()).
		Where("scenario_id", "==", scenarioID).
		OrderBy("id", firestore.Asc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var controls []*model.Control
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate controls",
				goerr.V("scenarioID", scenarioID))
		}

		var controlDoc controlDocument
		if err := doc.DataTo(&controlDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal control")
		}
		controls = append(controls, controlDoc.toModel())
	}

	return controls, nil
}

func (r *controlRepository) Update(ctx context.Context, control *model.Control) (*model.Control, error) {
	existing, err := r.Get(ctx, control.ID)
	if err != nil {
		return nil, err
	}

	updated := *control
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	doc := toControlDocument(&updated)
	docRef := r.client.Collection(r.collection()).Doc(r.docID(doc.ID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update control", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *controlRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	docRef := r.client.Collection(r.collection()).Doc(r.docID(id))
	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete control", goerr.V("id", id))
	}

	return nil
}
