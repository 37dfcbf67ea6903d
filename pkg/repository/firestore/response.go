package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type responseDocument struct {
	AssessmentID string            `firestore:"assessment_id"`
	Answers      map[string]string `firestore:"answers"`
	UpdatedAt    time.Time         `firestore:"updated_at"`
}

type responseRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newResponseRepository(client *firestore.Client) *responseRepository {
	return &responseRepository{client: client}
}

func (r *responseRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_responses"
	}
	return "responses"
}

func toResponseDocument(assessmentID types.AssessmentID, responses model.ResponseSet) *responseDocument {
	answers := make(map[string]string, len(responses))
	for q, a := range responses {
		answers[q.String()] = string(a)
	}
	return &responseDocument{
		AssessmentID: assessmentID.String(),
		Answers:      answers,
	}
}

func (d *responseDocument) toModel() *model.SurveyResponses {
	responses := make(model.ResponseSet, len(d.Answers))
	for q, a := range d.Answers {
		responses[types.QuestionID(q)] = types.Answer(a)
	}
	return &model.SurveyResponses{
		AssessmentID: types.AssessmentID(d.AssessmentID),
		Responses:    responses,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *responseRepository) Put(ctx context.Context, assessmentID types.AssessmentID, responses model.ResponseSet) (*model.SurveyResponses, error) {
	doc := toResponseDocument(assessmentID, responses)
	doc.UpdatedAt = time.Now().UTC()

	docRef := r.client.Collection(r.collection()).Doc(assessmentID.String())
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to put survey responses",
			goerr.V("assessmentID", assessmentID))
	}

	return doc.toModel(), nil
}

func (r *responseRepository) Get(ctx context.Context, assessmentID types.AssessmentID) (*model.SurveyResponses, error) {
	docRef := r.client.Collection(r.collection()).Doc(assessmentID.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			// No stored answers is an empty set, not an error
			return &model.SurveyResponses{
				AssessmentID: assessmentID,
				Responses:    model.ResponseSet{},
			}, nil
		}
		return nil, goerr.Wrap(err, "failed to get survey responses",
			goerr.V("assessmentID", assessmentID))
	}

	var responseDoc responseDocument
	if err := doc.DataTo(&responseDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal survey responses",
			goerr.V("assessmentID", assessmentID))
	}

	return responseDoc.toModel(), nil
}

func (r *responseRepository) Delete(ctx context.Context, assessmentID types.AssessmentID) error {
	docRef := r.client.Collection(r.collection()).Doc(assessmentID.String())
	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete survey responses",
			goerr.V("assessmentID", assessmentID))
	}

	return nil
}
