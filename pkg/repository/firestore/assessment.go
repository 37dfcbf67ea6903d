package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
)

type retailProfileDocument struct {
	AnnualRevenue       float64 `firestore:"annual_revenue"`
	ShrinkageRate       float64 `firestore:"shrinkage_rate"`
	HighValueCategories int     `firestore:"high_value_categories"`
	HasEAS              bool    `firestore:"has_eas"`
	HasPOSCCTV          bool    `firestore:"has_pos_cctv"`
	HasLPStaff          bool    `firestore:"has_lp_staff"`
	HasCashDropSafe     bool    `firestore:"has_cash_drop_safe"`
	PriorRobberies      int     `firestore:"prior_robberies"`
	PriorBurglaries     int     `firestore:"prior_burglaries"`
	PriorInternalTheft  int     `firestore:"prior_internal_theft"`
}

type warehouseProfileDocument struct {
	InventoryValue       float64 `firestore:"inventory_value"`
	LossRate             float64 `firestore:"loss_rate"`
	HighValueSKUs        int     `firestore:"high_value_skus"`
	HasPerimeterFencing  bool    `firestore:"has_perimeter_fencing"`
	HasCCTVCoverage      bool    `firestore:"has_cctv_coverage"`
	HasGuardPatrol       bool    `firestore:"has_guard_patrol"`
	HasDockAccessControl bool    `firestore:"has_dock_access_control"`
	PriorCargoThefts     int     `firestore:"prior_cargo_thefts"`
	PriorTrespasses      int     `firestore:"prior_trespasses"`
}

type assessmentDocument struct {
	ID           string    `firestore:"id"`
	Name         string    `firestore:"name"`
	FacilityName string    `firestore:"facility_name"`
	TemplateID   string    `firestore:"template_id"`
	CreatedAt    time.Time `firestore:"created_at"`
	UpdatedAt    time.Time `firestore:"updated_at"`

	RetailProfile    *retailProfileDocument    `firestore:"retail_profile,omitempty"`
	WarehouseProfile *warehouseProfileDocument `firestore:"warehouse_profile,omitempty"`
}

type assessmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAssessmentRepository(client *firestore.Client) *assessmentRepository {
	return &assessmentRepository{client: client}
}

func (r *assessmentRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_assessments"
	}
	return "assessments"
}

func toAssessmentDocument(a *model.Assessment) *assessmentDocument {
	doc := &assessmentDocument{
		ID:           a.ID.String(),
		Name:         a.Name,
		FacilityName: a.FacilityName,
		TemplateID:   a.TemplateID.String(),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if p := a.RetailProfile; p != nil {
		doc.RetailProfile = &retailProfileDocument{
			AnnualRevenue:       p.AnnualRevenue,
			ShrinkageRate:       p.ShrinkageRate,
			HighValueCategories: p.HighValueCategories,
			HasEAS:              p.HasEAS,
			HasPOSCCTV:          p.HasPOSCCTV,
			HasLPStaff:          p.HasLPStaff,
			HasCashDropSafe:     p.HasCashDropSafe,
			PriorRobberies:      p.PriorRobberies,
			PriorBurglaries:     p.PriorBurglaries,
			PriorInternalTheft:  p.PriorInternalTheft,
		}
	}
	if p := a.WarehouseProfile; p != nil {
		doc.WarehouseProfile = &warehouseProfileDocument{
			InventoryValue:       p.InventoryValue,
			LossRate:             p.LossRate,
			HighValueSKUs:        p.HighValueSKUs,
			HasPerimeterFencing:  p.HasPerimeterFencing,
			HasCCTVCoverage:      p.HasCCTVCoverage,
			HasGuardPatrol:       p.HasGuardPatrol,
			HasDockAccessControl: p.HasDockAccessControl,
			PriorCargoThefts:     p.PriorCargoThefts,
			PriorTrespasses:      p.PriorTrespasses,
		}
	}
	return doc
}

func (d *assessmentDocument) toModel() *model.Assessment {
	assessment := &model.Assessment{
		ID:           types.AssessmentID(d.ID),
		Name:         d.Name,
		FacilityName: d.FacilityName,
		TemplateID:   types.TemplateID(d.TemplateID),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if p := d.RetailProfile; p != nil {
		assessment.RetailProfile = &model.RetailProfile{
			AnnualRevenue:       p.AnnualRevenue,
			ShrinkageRate:       p.ShrinkageRate,
			HighValueCategories: p.HighValueCategories,
			HasEAS:              p.HasEAS,
			HasPOSCCTV:          p.HasPOSCCTV,
			HasLPStaff:          p.HasLPStaff,
			HasCashDropSafe:     p.HasCashDropSafe,
			PriorRobberies:      p.PriorRobberies,
			PriorBurglaries:     p.PriorBurglaries,
			PriorInternalTheft:  p.PriorInternalTheft,
		}
	}
	if p := d.WarehouseProfile; p != nil {
		assessment.WarehouseProfile = &model.WarehouseProfile{
			InventoryValue:       p.InventoryValue,
			LossRate:             p.LossRate,
			HighValueSKUs:        p.HighValueSKUs,
			HasPerimeterFencing:  p.HasPerimeterFencing,
			HasCCTVCoverage:      p.HasCCTVCoverage,
			HasGuardPatrol:       p.HasGuardPatrol,
			HasDockAccessControl: p.HasDockAccessControl,
			PriorCargoThefts:     p.PriorCargoThefts,
			PriorTrespasses:      p.PriorTrespasses,
		}
	}
	return assessment
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	now := time.Now().UTC()

	created := *assessment
	if created.ID == "" {
		created.ID = model.NewAssessmentID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	doc := toAssessmentDocument(&created)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create assessment", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *assessmentRepository) Get(ctx context.Context, id types.AssessmentID) (*model.Assessment, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("id", id))
	}

	var assessmentDoc assessmentDocument
	if err := doc.DataTo(&assessmentDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal assessment", goerr.V("id", id))
	}

	return assessmentDoc.toModel(), nil
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.Assessment, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var assessments []*model.Assessment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate assessments")
		}

		var assessmentDoc assessmentDocument
		if err := doc.DataTo(&assessmentDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal assessment")
		}
		assessments = append(assessments, assessmentDoc.toModel())
	}

	return assessments, nil
}

func (r *assessmentRepository) Update(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	existing, err := r.Get(ctx, assessment.ID)
	if err != nil {
		return nil, err
	}

	updated := *assessment
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	doc := toAssessmentDocument(&updated)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update assessment", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *assessmentRepository) Delete(ctx context.Context, id types.AssessmentID) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	docRef := r.client.Collection(r.collection()).Doc(id.String())
	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete assessment", goerr.V("id", id))
	}

	return nil
}
