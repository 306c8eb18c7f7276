// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pathlight/insights-engine/gen/ent/insightrecord"
	"github.com/pathlight/insights-engine/gen/ent/predicate"
)

// InsightRecordUpdate is the builder for updating InsightRecord entities.
type InsightRecordUpdate struct {
	config
	hooks    []Hook
	mutation *InsightRecordMutation
}

// Where appends a list predicates to the InsightRecordUpdate builder.
func (_u *InsightRecordUpdate) Where(ps ...predicate.InsightRecord) *InsightRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InsightRecordUpdate) SetUserID(v string) *InsightRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InsightRecordUpdate) SetNillableUserID(v *string) *InsightRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *InsightRecordUpdate) ClearUserID() *InsightRecordUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *InsightRecordUpdate) SetKind(v string) *InsightRecordUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *InsightRecordUpdate) SetNillableKind(v *string) *InsightRecordUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetRequestParams sets the "request_params" field.
func (_u *InsightRecordUpdate) SetRequestParams(v map[string]interface{}) *InsightRecordUpdate {
	_u.mutation.SetRequestParams(v)
	return _u
}

// ClearRequestParams clears the value of the "request_params" field.
func (_u *InsightRecordUpdate) ClearRequestParams() *InsightRecordUpdate {
	_u.mutation.ClearRequestParams()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *InsightRecordUpdate) SetPayload(v map[string]interface{}) *InsightRecordUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *InsightRecordUpdate) SetOrigin(v string) *InsightRecordUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *InsightRecordUpdate) SetNillableOrigin(v *string) *InsightRecordUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InsightRecordUpdate) SetConfidence(v int) *InsightRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InsightRecordUpdate) SetNillableConfidence(v *int) *InsightRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InsightRecordUpdate) AddConfidence(v int) *InsightRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the InsightRecordMutation object of the builder.
func (_u *InsightRecordUpdate) Mutation() *InsightRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsightRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsightRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightRecordUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := insightrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := insightrecord.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.origin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := insightrecord.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insightrecord.Table, insightrecord.Columns, sqlgraph.NewFieldSpec(insightrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(insightrecord.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(insightrecord.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(insightrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestParams(); ok {
		_spec.SetField(insightrecord.FieldRequestParams, field.TypeJSON, value)
	}
	if _u.mutation.RequestParamsCleared() {
		_spec.ClearField(insightrecord.FieldRequestParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(insightrecord.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(insightrecord.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(insightrecord.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(insightrecord.FieldConfidence, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insightrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsightRecordUpdateOne is the builder for updating a single InsightRecord entity.
type InsightRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsightRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *InsightRecordUpdateOne) SetUserID(v string) *InsightRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InsightRecordUpdateOne) SetNillableUserID(v *string) *InsightRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *InsightRecordUpdateOne) ClearUserID() *InsightRecordUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *InsightRecordUpdateOne) SetKind(v string) *InsightRecordUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *InsightRecordUpdateOne) SetNillableKind(v *string) *InsightRecordUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetRequestParams sets the "request_params" field.
func (_u *InsightRecordUpdateOne) SetRequestParams(v map[string]interface{}) *InsightRecordUpdateOne {
	_u.mutation.SetRequestParams(v)
	return _u
}

// ClearRequestParams clears the value of the "request_params" field.
func (_u *InsightRecordUpdateOne) ClearRequestParams() *InsightRecordUpdateOne {
	_u.mutation.ClearRequestParams()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *InsightRecordUpdateOne) SetPayload(v map[string]interface{}) *InsightRecordUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *InsightRecordUpdateOne) SetOrigin(v string) *InsightRecordUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *InsightRecordUpdateOne) SetNillableOrigin(v *string) *InsightRecordUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InsightRecordUpdateOne) SetConfidence(v int) *InsightRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InsightRecordUpdateOne) SetNillableConfidence(v *int) *InsightRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InsightRecordUpdateOne) AddConfidence(v int) *InsightRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the InsightRecordMutation object of the builder.
func (_u *InsightRecordUpdateOne) Mutation() *InsightRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the InsightRecordUpdate builder.
func (_u *InsightRecordUpdateOne) Where(ps ...predicate.InsightRecord) *InsightRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsightRecordUpdateOne) Select(field string, fields ...string) *InsightRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InsightRecord entity.
func (_u *InsightRecordUpdateOne) Save(ctx context.Context) (*InsightRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightRecordUpdateOne) SaveX(ctx context.Context) *InsightRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsightRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := insightrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := insightrecord.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.origin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := insightrecord.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightRecordUpdateOne) sqlSave(ctx context.Context) (_node *InsightRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insightrecord.Table, insightrecord.Columns, sqlgraph.NewFieldSpec(insightrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InsightRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insightrecord.FieldID)
		for _, f := range fields {
			if !insightrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insightrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(insightrecord.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(insightrecord.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(insightrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestParams(); ok {
		_spec.SetField(insightrecord.FieldRequestParams, field.TypeJSON, value)
	}
	if _u.mutation.RequestParamsCleared() {
		_spec.ClearField(insightrecord.FieldRequestParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(insightrecord.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(insightrecord.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(insightrecord.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(insightrecord.FieldConfidence, field.TypeInt, value)
	}
	_node = &InsightRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insightrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
