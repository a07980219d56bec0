package main

import (
	"fmt"

	"github.com/npillmayer/bidishape"
	"github.com/npillmayer/bidishape/ubidi"
	"github.com/npillmayer/bidishape/ushape"
	"github.com/pterm/pterm"
)

func reorderOp(intp *Intp, op *Op) (error, bool) {
	return intp.runPipeline(bidishape.ReorderReshape, op), false
}

func reshapeOp(intp *Intp, op *Op) (error, bool) {
	return intp.runPipeline(bidishape.Reshape, op), false
}

func (intp *Intp) runPipeline(operation bidishape.Operation, op *Op) error {
	src, err := intp.codeUnits(op)
	if err != nil {
		return err
	}
	dest := make([]uint16, len(src))
	n, err := operation.Apply(src, dest, 0, len(src))
	if err != nil {
		return err
	}
	intp.last = dest[:n]
	pterm.Info.Printf("%s wrote %d of %d code units\n", operation, n, len(src))
	printCodeUnits(src, intp.last)
	return nil
}

func levelsOp(intp *Intp, op *Op) (error, bool) {
	src, err := intp.codeUnits(op)
	if err != nil {
		return err, false
	}
	para, err := ubidi.OpenSized(len(src))
	if err != nil {
		return err, false
	}
	defer para.Close()
	para.SetReorderingMode(ubidi.ReorderInverseLikeDirect)
	if err = para.SetPara(src, ubidi.DefaultRTL); err != nil {
		return err, false
	}
	levels, err := para.Levels()
	if err != nil {
		return err, false
	}
	lmap, err := para.LogicalMap()
	if err != nil {
		return err, false
	}
	pterm.Info.Printf("paragraph level %d, direction %v\n", para.ParaLevel(), para.Direction())
	printLevels(src, levels, lmap)
	return nil, false
}

func unshapeOp(intp *Intp, op *Op) (error, bool) {
	src, err := intp.codeUnits(op)
	if err != nil {
		return err, false
	}
	opts := ushape.LettersUnshape
	n, err := ushape.ShapeArabic(src, nil, opts) // preflight
	if err != nil {
		return err, false
	}
	dest := make([]uint16, n)
	if n, err = ushape.ShapeArabic(src, dest, opts); err != nil {
		return err, false
	}
	intp.last = dest[:n]
	printCodeUnits(src, intp.last)
	return nil, false
}

func lastOp(intp *Intp, op *Op) (error, bool) {
	if intp.last == nil {
		return fmt.Errorf("no operation run yet"), false
	}
	printCodeUnits(nil, intp.last)
	return nil, false
}
