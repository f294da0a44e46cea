package pysticks

import (
	"strings"

	"github.com/2x3systems/sticks/libsticks"
	"github.com/2x3systems/sticks/sticks"
	"github.com/go-python/gpython/py"
	"github.com/pkg/errors"
)

var (
	LIB_VERSION = "v1.2026.1"
)

var (
	pyGridType = py.NewType("Grid", "a stick-bomb relation grid")
)

type pyGrid struct {
	*libsticks.Grid
}

func (X pyGrid) Type() *py.Type {
	return pyGridType
}

func (X pyGrid) M__str__() (py.Object, error) {
	writer := strings.Builder{}
	X.WriteAsTable(&writer, sticks.DefaultPrintOpts)
	return py.String(writer.String()), nil
}

func (X pyGrid) M__repr__() (py.Object, error) {
	return X.M__str__()
}

// exportErr maps a grid error onto the closest Python exception.
func exportErr(err error) error {
	switch {
	case errors.Is(err, sticks.ErrOutOfRange):
		return py.ExceptionNewf(py.IndexError, "%v", err)
	default:
		return py.ExceptionNewf(py.ValueError, "%v", err)
	}
}

// Arg 1 (int): number of sticks
func py_NewGrid(module py.Object, args py.Tuple) (py.Object, error) {
	var n py.Object
	err := py.ParseTuple(args, "i", &n)
	if err != nil {
		return nil, err
	}

	X, err := libsticks.NewGrid(int(n.(py.Int)))
	if err != nil {
		return nil, exportErr(err)
	}
	return py.Object(pyGrid{X}), nil
}

// Arg 1 (bytes): output of Grid.Export()
func py_Import(module py.Object, args py.Tuple) (py.Object, error) {
	if len(args) != 1 {
		return nil, py.ExceptionNewf(py.TypeError, "Import() takes exactly one argument")
	}
	buf, ok := args[0].(py.Bytes)
	if !ok {
		return nil, py.ExceptionNewf(py.TypeError, "expected bytes (got %v)", args[0].Type().Name)
	}
	X, err := libsticks.UnmarshalGrid([]byte(buf))
	if err != nil {
		return nil, exportErr(err)
	}
	return py.Object(pyGrid{X}), nil
}

// getSign accepts "+" / "-" or +1 / -1.
func getSign(obj py.Object) (sticks.Sign, error) {
	switch v := obj.(type) {
	case py.String:
		sign, err := sticks.ParseSign(string(v))
		if err != nil {
			return sticks.NoSign, exportErr(errors.Wrapf(err, "got %q", string(v)))
		}
		return sign, nil
	case py.Int:
		sign, err := sticks.SignOf(int64(v))
		if err != nil {
			return sticks.NoSign, exportErr(errors.Wrapf(err, "got %d", int64(v)))
		}
		return sign, nil
	}
	return sticks.NoSign, py.ExceptionNewf(py.TypeError, "sign must be str or int (got %v)", obj.Type().Name)
}

// Arg 1 (int): first point
// Arg 2 (int): second point
// Arg 3 (str or int): sign
func py_Grid_Connect(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGrid)
	var from, to, signObj py.Object
	err := py.ParseTuple(args, "iiO", &from, &to, &signObj)
	if err != nil {
		return nil, err
	}
	sign, err := getSign(signObj)
	if err != nil {
		return nil, err
	}

	eliminated, err := X.Connect(int(from.(py.Int)), int(to.(py.Int)), sign)
	if err != nil {
		return nil, exportErr(err)
	}
	return py.Int(eliminated), nil
}

func py_Grid_Apply(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGrid)
	var script py.Object
	err := py.ParseTuple(args, "s", &script)
	if err != nil {
		return nil, err
	}

	eliminated, err := X.ApplyScript(string(script.(py.String)))
	if err != nil {
		return nil, exportErr(err)
	}
	return py.Int(eliminated), nil
}

func py_Grid_IsComplete(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGrid)
	return py.NewBool(X.IsComplete()), nil
}

func py_Grid_NumSticks(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGrid)
	return py.Int(X.MemberCount()), nil
}

func py_Grid_Cell(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGrid)
	var r, c py.Object
	err := py.ParseTuple(args, "ii", &r, &c)
	if err != nil {
		return nil, err
	}
	row, col := int(r.(py.Int)), int(c.(py.Int))
	N := X.PointCount()
	if row < 0 || row >= N || col < 0 || col >= N {
		return nil, py.ExceptionNewf(py.IndexError, "cell (%d,%d) outside %dx%d grid", row, col, N, N)
	}
	return py.String(X.Cell(row, col).Label()), nil
}

func py_Grid_Render(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGrid)
	rows := X.Render()
	out := make(py.Tuple, len(rows))
	for i, row := range rows {
		labels := make(py.Tuple, len(row))
		for j, label := range row {
			labels[j] = py.String(label)
		}
		out[i] = labels
	}
	return out, nil
}

func py_Grid_Moves(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGrid)
	return py.String(libsticks.FormatMoves(X.Moves())), nil
}

func py_Grid_Census(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGrid)
	res, err := libsticks.Census(X.Grid)
	if err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}

	dict := py.NewStringDict()
	dict["legal"] = py.Int(res.LegalMoves)
	dict["outcomes"] = py.Int(res.Outcomes)
	dict["completing"] = py.Int(res.Completing)
	dict["max_eliminated"] = py.Int(res.MaxEliminated)
	dict["best"] = py.String(libsticks.FormatMoves([]sticks.Move{res.Best}))
	return dict, nil
}

func py_Grid_Export(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGrid)
	buf, err := X.MarshalDef()
	if err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}
	return py.Bytes(buf), nil
}

func init() {

	/////////////////////////////////
	// Grid
	{
		pyGridType.Dict["Connect"] = py.MustNewMethod("Connect", py_Grid_Connect, 0, "places a link between two points and returns the number of cells it eliminated")
		pyGridType.Dict["Apply"] = py.MustNewMethod("Apply", py_Grid_Apply, 0, "applies a move script such as \"1+3, 0+4\"")
		pyGridType.Dict["IsComplete"] = py.MustNewMethod("IsComplete", py_Grid_IsComplete, 0, "")
		pyGridType.Dict["NumSticks"] = py.MustNewMethod("NumSticks", py_Grid_NumSticks, 0, "")
		pyGridType.Dict["Cell"] = py.MustNewMethod("Cell", py_Grid_Cell, 0, "returns the label of a single cell")
		pyGridType.Dict["Render"] = py.MustNewMethod("Render", py_Grid_Render, 0, "returns every cell label, row by row")
		pyGridType.Dict["Moves"] = py.MustNewMethod("Moves", py_Grid_Moves, 0, "returns the accepted moves as a move script")
		pyGridType.Dict["Census"] = py.MustNewMethod("Census", py_Grid_Census, 0, "tallies every legal next move")
		pyGridType.Dict["Export"] = py.MustNewMethod("Export", py_Grid_Export, 0, "exports this Grid as a bytes object")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("NewGrid", py_NewGrid, 0, ""),
			py.MustNewMethod("Import", py_Import, 0, "rebuilds a Grid from Grid.Export()"),
		}

		globals := py.StringDict{
			"LIB_VERSION": py.String(LIB_VERSION),
			"MIN_MEMBERS": py.Int(sticks.MinMembers),
			"MAX_MEMBERS": py.Int(sticks.MaxMembers),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "sticks",
				Doc:  "stick-bomb relation grid gpython module",
			},
			Methods: methods,
			Globals: globals,
		})
	}
}
