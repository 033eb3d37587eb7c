// Package replay encodes a single (Observation, Decision) pair into a
// compact flatbuffer-schema'd byte record for cmd/balootctl's
// replay/inspect subcommands (spec.md §6's debuggability surface).
// Grounded structurally on signalnine-darwindeck's
// src/gosim/cgo/bridge.go, which builds and reads flatbuffer tables by
// hand against the raw github.com/google/flatbuffers/go runtime (no
// flatc-generated accessors are available in this pack, so the table
// layout below is a hand-rolled schema expressed directly in terms of
// Builder.StartObject/PrependXSlot/EndObject, the same primitives
// flatc itself compiles down to). Never used inside the pure decision
// path — only by the CLI.
package replay

import (
	"fmt"
	"strings"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/uuid"

	"github.com/tazjel/baloot-ai/internal/baloot"
)

// Field layout (vtable slot order), documented once here since there
// is no .fbs schema file to read it from:
//
//	0 record_id          (string)
//	1 phase              (int32)
//	2 my_position        (int32)
//	3 card_index         (int32)
//	4 confidence         (float64)
//	5 reasoning          (string)
//	6 strategy_label     (string)
//	7 modules_consulted  (string, comma-joined)
//	8 hand               (byte vector, 2 bytes per card: rank, suit)
const numFields = 9

// Record is the decoded, in-memory form of a replay entry.
type Record struct {
	ID               string
	Phase            baloot.Phase
	MyPosition       baloot.Position
	CardIndex        int
	Confidence       float64
	Reasoning        string
	StrategyLabel    string
	ModulesConsulted []string
	Hand             []baloot.Card
}

// NewRecord builds a Record from a play decision, stamping a fresh
// correlation ID (spec.md §6's debuggability surface).
func NewRecord(obs baloot.Observation, decision baloot.PlayDecision) Record {
	return Record{
		ID:               uuid.NewString(),
		Phase:            obs.Phase,
		MyPosition:       obs.MyPosition,
		CardIndex:        decision.CardIndex,
		Confidence:       decision.Confidence,
		Reasoning:        decision.Reasoning,
		StrategyLabel:    decision.StrategyLabel,
		ModulesConsulted: decision.ModulesConsulted,
		Hand:             obs.MyHand,
	}
}

func encodeHand(hand []baloot.Card) []byte {
	buf := make([]byte, 0, len(hand)*2)
	for _, c := range hand {
		buf = append(buf, byte(c.Rank), byte(c.Suit))
	}
	return buf
}

func decodeHand(buf []byte) []baloot.Card {
	hand := make([]baloot.Card, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		hand = append(hand, baloot.NewCard(baloot.Rank(buf[i]), baloot.Suit(buf[i+1])))
	}
	return hand
}

// Encode serializes r into a standalone flatbuffer byte buffer.
func Encode(r Record) []byte {
	b := flatbuffers.NewBuilder(256)

	handOff := b.CreateByteVector(encodeHand(r.Hand))
	modulesOff := b.CreateString(strings.Join(r.ModulesConsulted, ","))
	labelOff := b.CreateString(r.StrategyLabel)
	reasoningOff := b.CreateString(r.Reasoning)
	idOff := b.CreateString(r.ID)

	b.StartObject(numFields)
	b.PrependUOffsetTSlot(0, idOff, 0)
	b.PrependInt32Slot(1, int32(r.Phase), 0)
	b.PrependInt32Slot(2, int32(r.MyPosition), 0)
	b.PrependInt32Slot(3, int32(r.CardIndex), 0)
	b.PrependFloat64Slot(4, r.Confidence, 0)
	b.PrependUOffsetTSlot(5, reasoningOff, 0)
	b.PrependUOffsetTSlot(6, labelOff, 0)
	b.PrependUOffsetTSlot(7, modulesOff, 0)
	b.PrependUOffsetTSlot(8, handOff, 0)
	rec := b.EndObject()

	b.Finish(rec)
	return b.FinishedBytes()
}

// recordTable is the hand-rolled equivalent of a flatc-generated
// table wrapper: a thin view over the raw buffer plus vtable offset
// lookups, following the exact accessor pattern generated code uses
// (Offset(4+2*slot) then the appropriate typed read).
type recordTable struct {
	tab flatbuffers.Table
}

func vtableOffset(slot int) flatbuffers.VOffsetT {
	return flatbuffers.VOffsetT(4 + 2*slot)
}

func (t *recordTable) stringField(slot int) string {
	o := t.tab.Offset(vtableOffset(slot))
	if o == 0 {
		return ""
	}
	return string(t.tab.ByteVector(o + flatbuffers.UOffsetT(t.tab.Pos)))
}

func (t *recordTable) int32Field(slot int) int32 {
	o := t.tab.Offset(vtableOffset(slot))
	if o == 0 {
		return 0
	}
	return t.tab.GetInt32(o + flatbuffers.UOffsetT(t.tab.Pos))
}

func (t *recordTable) float64Field(slot int) float64 {
	o := t.tab.Offset(vtableOffset(slot))
	if o == 0 {
		return 0
	}
	return t.tab.GetFloat64(o + flatbuffers.UOffsetT(t.tab.Pos))
}

func (t *recordTable) byteVectorField(slot int) []byte {
	o := t.tab.Offset(vtableOffset(slot))
	if o == 0 {
		return nil
	}
	// Vector/VectorLen add tab.Pos internally (unlike ByteVector/String,
	// which expect an already-absolute offset) — pass the raw field
	// offset here, not o+tab.Pos.
	vecStart := t.tab.Vector(o)
	length := t.tab.VectorLen(o)
	return t.tab.Bytes[vecStart : vecStart+flatbuffers.UOffsetT(length)]
}

// Decode parses a buffer produced by Encode back into a Record.
func Decode(buf []byte) (Record, error) {
	if len(buf) < 4 {
		return Record{}, fmt.Errorf("replay: buffer too short to contain a record")
	}
	n := flatbuffers.GetUOffsetT(buf)
	t := &recordTable{tab: flatbuffers.Table{Bytes: buf, Pos: n}}

	modules := t.stringField(7)
	var moduleList []string
	if modules != "" {
		moduleList = strings.Split(modules, ",")
	}

	return Record{
		ID:               t.stringField(0),
		Phase:            baloot.Phase(t.int32Field(1)),
		MyPosition:       baloot.Position(t.int32Field(2)),
		CardIndex:        int(t.int32Field(3)),
		Confidence:       t.float64Field(4),
		Reasoning:        t.stringField(5),
		StrategyLabel:    t.stringField(6),
		ModulesConsulted: moduleList,
		Hand:             decodeHand(t.byteVectorField(8)),
	}, nil
}
