// Code generated by ent, DO NOT EDIT.

package item

import (
	"feed-engagement/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldID, id))
}

// ImpressionsCount applies equality check predicate on the "impressions_count" field. It's identical to ImpressionsCountEQ.
func ImpressionsCount(v int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldImpressionsCount, v))
}

// ClicksCount applies equality check predicate on the "clicks_count" field. It's identical to ClicksCountEQ.
func ClicksCount(v int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldClicksCount, v))
}

// SuccessScore applies equality check predicate on the "success_score" field. It's identical to SuccessScoreEQ.
func SuccessScore(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldSuccessScore, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldUpdatedAt, v))
}

// ImpressionsCountEQ applies the EQ predicate on the "impressions_count" field.
func ImpressionsCountEQ(v int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldImpressionsCount, v))
}

// ImpressionsCountNEQ applies the NEQ predicate on the "impressions_count" field.
func ImpressionsCountNEQ(v int64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldImpressionsCount, v))
}

// ImpressionsCountIn applies the In predicate on the "impressions_count" field.
func ImpressionsCountIn(vs ...int64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldImpressionsCount, vs...))
}

// ImpressionsCountNotIn applies the NotIn predicate on the "impressions_count" field.
func ImpressionsCountNotIn(vs ...int64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldImpressionsCount, vs...))
}

// ImpressionsCountGT applies the GT predicate on the "impressions_count" field.
func ImpressionsCountGT(v int64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldImpressionsCount, v))
}

// ImpressionsCountGTE applies the GTE predicate on the "impressions_count" field.
func ImpressionsCountGTE(v int64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldImpressionsCount, v))
}

// ImpressionsCountLT applies the LT predicate on the "impressions_count" field.
func ImpressionsCountLT(v int64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldImpressionsCount, v))
}

// ImpressionsCountLTE applies the LTE predicate on the "impressions_count" field.
func ImpressionsCountLTE(v int64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldImpressionsCount, v))
}

// ClicksCountEQ applies the EQ predicate on the "clicks_count" field.
func ClicksCountEQ(v int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldClicksCount, v))
}

// ClicksCountNEQ applies the NEQ predicate on the "clicks_count" field.
func ClicksCountNEQ(v int64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldClicksCount, v))
}

// ClicksCountIn applies the In predicate on the "clicks_count" field.
func ClicksCountIn(vs ...int64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldClicksCount, vs...))
}

// ClicksCountNotIn applies the NotIn predicate on the "clicks_count" field.
func ClicksCountNotIn(vs ...int64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldClicksCount, vs...))
}

// ClicksCountGT applies the GT predicate on the "clicks_count" field.
func ClicksCountGT(v int64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldClicksCount, v))
}

// ClicksCountGTE applies the GTE predicate on the "clicks_count" field.
func ClicksCountGTE(v int64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldClicksCount, v))
}

// ClicksCountLT applies the LT predicate on the "clicks_count" field.
func ClicksCountLT(v int64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldClicksCount, v))
}

// ClicksCountLTE applies the LTE predicate on the "clicks_count" field.
func ClicksCountLTE(v int64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldClicksCount, v))
}

// SuccessScoreEQ applies the EQ predicate on the "success_score" field.
func SuccessScoreEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldSuccessScore, v))
}

// SuccessScoreNEQ applies the NEQ predicate on the "success_score" field.
func SuccessScoreNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldSuccessScore, v))
}

// SuccessScoreIn applies the In predicate on the "success_score" field.
func SuccessScoreIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldSuccessScore, vs...))
}

// SuccessScoreNotIn applies the NotIn predicate on the "success_score" field.
func SuccessScoreNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldSuccessScore, vs...))
}

// SuccessScoreGT applies the GT predicate on the "success_score" field.
func SuccessScoreGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldSuccessScore, v))
}

// SuccessScoreGTE applies the GTE predicate on the "success_score" field.
func SuccessScoreGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldSuccessScore, v))
}

// SuccessScoreLT applies the LT predicate on the "success_score" field.
func SuccessScoreLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldSuccessScore, v))
}

// SuccessScoreLTE applies the LTE predicate on the "success_score" field.
func SuccessScoreLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldSuccessScore, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Item) predicate.Item {
	return predicate.Item(sql.NotPredicates(p))
}
