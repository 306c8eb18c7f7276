// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pathlight/insights-engine/gen/ent/insightrecord"
)

// InsightRecordCreate is the builder for creating a InsightRecord entity.
type InsightRecordCreate struct {
	config
	mutation *InsightRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *InsightRecordCreate) SetUserID(v string) *InsightRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *InsightRecordCreate) SetNillableUserID(v *string) *InsightRecordCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *InsightRecordCreate) SetKind(v string) *InsightRecordCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetRequestParams sets the "request_params" field.
func (_c *InsightRecordCreate) SetRequestParams(v map[string]interface{}) *InsightRecordCreate {
	_c.mutation.SetRequestParams(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *InsightRecordCreate) SetPayload(v map[string]interface{}) *InsightRecordCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *InsightRecordCreate) SetOrigin(v string) *InsightRecordCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *InsightRecordCreate) SetConfidence(v int) *InsightRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *InsightRecordCreate) SetNillableConfidence(v *int) *InsightRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InsightRecordCreate) SetCreatedAt(v time.Time) *InsightRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InsightRecordCreate) SetNillableCreatedAt(v *time.Time) *InsightRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InsightRecordCreate) SetID(v uuid.UUID) *InsightRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InsightRecordCreate) SetNillableID(v *uuid.UUID) *InsightRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the InsightRecordMutation object of the builder.
func (_c *InsightRecordCreate) Mutation() *InsightRecordMutation {
	return _c.mutation
}

// Save creates the InsightRecord in the database.
func (_c *InsightRecordCreate) Save(ctx context.Context) (*InsightRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsightRecordCreate) SaveX(ctx context.Context) *InsightRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsightRecordCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := insightrecord.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := insightrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := insightrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsightRecordCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "InsightRecord.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := insightrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "InsightRecord.payload"`)}
	}
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "InsightRecord.origin"`)}
	}
	if v, ok := _c.mutation.Origin(); ok {
		if err := insightrecord.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.origin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "InsightRecord.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := insightrecord.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InsightRecord.created_at"`)}
	}
	return nil
}

func (_c *InsightRecordCreate) sqlSave(ctx context.Context) (*InsightRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InsightRecordCreate) createSpec() (*InsightRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &InsightRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insightrecord.Table, sqlgraph.NewFieldSpec(insightrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(insightrecord.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(insightrecord.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.RequestParams(); ok {
		_spec.SetField(insightrecord.FieldRequestParams, field.TypeJSON, value)
		_node.RequestParams = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(insightrecord.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(insightrecord.FieldOrigin, field.TypeString, value)
		_node.Origin = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(insightrecord.FieldConfidence, field.TypeInt, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(insightrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// InsightRecordCreateBulk is the builder for creating many InsightRecord entities in bulk.
type InsightRecordCreateBulk struct {
	config
	err      error
	builders []*InsightRecordCreate
}

// Save creates the InsightRecord entities in the database.
func (_c *InsightRecordCreateBulk) Save(ctx context.Context) ([]*InsightRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InsightRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsightRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InsightRecordCreateBulk) SaveX(ctx context.Context) []*InsightRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
