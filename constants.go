package main

type Mode int

const (
	ModeDraw Mode = iota
	ModePlay
	ModeInput
	ModeConfirm
)

type ToolKind int

const (
	ToolPencil ToolKind = iota
	ToolEraser
	ToolEllipse
	ToolRectangle
)

func (k ToolKind) String() string {
	switch k {
	case ToolPencil:
		return "pencil"
	case ToolEraser:
		return "eraser"
	case ToolEllipse:
		return "ellipse"
	case ToolRectangle:
		return "rectangle"
	}
	return "unknown"
}

type StrokeKind int

const (
	StrokeFreehand StrokeKind = iota
	StrokeEraser
	StrokeEllipse
	StrokeRectangle
)

type InputKind int

const (
	InputGenerateCount InputKind = iota
	InputFPS
)

type ConfirmAction int

const (
	ConfirmDeleteAll ConfirmAction = iota
	ConfirmQuit
)

type BusyJob int

const (
	BusyNone BusyJob = iota
	BusyGenerating
	BusyExportingGIF
	BusyExportingPDF
	BusyExportingSheet
)

const (
	minStrokeWidth   = 1.0
	maxStrokeWidth   = 50.0
	maxGenerateCount = 1000
	maxFPS           = 60
	squareSides      = 4
)
