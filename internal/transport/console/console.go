package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/entity"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/tictactoe"
)

const (
	cellSeparator = " | "
	dividerWidth  = 10
)

// Console reads player input line by line and writes the game to a terminal.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer

	startReader sync.Once
	lines       chan line
}

// line is one read from the input: text, or the error that ended the input.
type line struct {
	text string
	err  error
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		lines:   make(chan line),
	}
}

// ShowIntro prints the welcome banner and the keypad legend.
func (that *Console) ShowIntro() {
	that.println("Welcome to Unbeatable Tic-Tac-Toe!")
	that.println("Proceed without hope...")
	that.println("")
	that.println("Player one is: ", entity.FirstSeat.Mark().String())
	that.println("Player two is: ", entity.SecondSeat.Mark().String())
	that.println("")
	that.println("Use the number pad to select your move like so:")
	that.println("")

	var legend entity.Board
	that.print(renderRows(legend, func(i int, _ entity.Cell) string {
		return fmt.Sprint(entity.Move{Row: i / entity.Size, Col: i % entity.Size}.Keypad())
	}))
	that.println("")
	that.println("(Note: you may need to press the Num Lock key to activate your numeric keypad)")
	that.println("")
}

// ReadGameType shows the game type menu and reads the answer.
func (that *Console) ReadGameType(ctx context.Context) (string, error) {
	that.println("This game can be played in the following configurations:")
	that.println("[0] Human vs. Human")
	that.println("[1] Human vs. Computer")
	that.println("[2] Computer vs. Computer")
	that.println("")

	return that.readLine(ctx, "Enter the number corresponding to the game type you would like to play: ")
}

// ReadMove prompts the seat for a keypad number.
func (that *Console) ReadMove(ctx context.Context, seat entity.Seat) (string, error) {
	prompt := fmt.Sprintf("Player [%d], your turn. Press 1-9 on numpad to select move and hit <ENTER>: ", seat.Number())

	return that.readLine(ctx, prompt)
}

func (that *Console) ShowBoard(board entity.Board) {
	that.print(RenderBoard(board))
	that.println("")
	that.println("")
}

func (that *Console) ShowDecision(player entity.Player) {
	that.println("")
	that.println(strings.ToUpper(player.String()), " HAS DECIDED...")
}

func (that *Console) ShowRejectedMove(board entity.Board, err error) {
	that.println("")
	if errors.Is(err, apperror.ErrCellOccupied) {
		that.println("Invalid move, square is already taken; Please select an available square.")
	} else {
		that.println("Invalid input; Please select a number 1-9.")
	}
	that.println("")
	that.ShowBoard(board)
}

func (that *Console) ShowResult(board entity.Board, outcome tictactoe.Outcome, seat entity.Seat) {
	that.ShowBoard(board)

	switch outcome.Status {
	case tictactoe.StatusWon:
		that.println(fmt.Sprintf("Player [%d] is the WINNER!!! #Sorrynotsorry", seat.Number()))
	case tictactoe.StatusDraw:
		that.println("DRAW! You just can't win, can you?")
	}
}

// ShowFailure reports a game that could not be finished.
func (that *Console) ShowFailure(err error) {
	that.println("FAILURE :'(")
	that.println(err.Error())
}

// RenderBoard draws the rows top first, cells joined by " | " and rows
// separated by dashed lines.
func RenderBoard(board entity.Board) string {
	return renderRows(board, func(_ int, cell entity.Cell) string {
		return cell.String()
	})
}

func renderRows(board entity.Board, label func(i int, cell entity.Cell) string) string {
	var builder strings.Builder

	for row, cells := range board.Rows() {
		if row > 0 {
			builder.WriteString(strings.Repeat("-", dividerWidth))
			builder.WriteString("\n")
		}

		labels := make([]string, 0, len(cells))
		for col, cell := range cells {
			labels = append(labels, label(row*entity.Size+col, cell))
		}

		builder.WriteString(strings.Join(labels, cellSeparator))
		builder.WriteString("\n")
	}

	return builder.String()
}

func (that *Console) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("input canceled: %w", err)
	}

	that.print(prompt)
	that.startReader.Do(func() {
		go that.read()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("input canceled: %w", ctx.Err())
	case next, ok := <-that.lines:
		if !ok {
			return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, io.EOF)
		}
		if next.err != nil {
			return "", next.err
		}

		return strings.TrimSpace(next.text), nil
	}
}

// read feeds input lines to readLine until the input ends. A blocked Scan
// cannot be interrupted, so it runs apart from the caller.
func (that *Console) read() {
	defer close(that.lines)

	for that.scanner.Scan() {
		that.lines <- line{text: that.scanner.Text()}
	}

	if err := that.scanner.Err(); err != nil {
		that.lines <- line{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

func (that *Console) print(text string) {
	_, _ = io.WriteString(that.out, text)
}

func (that *Console) println(parts ...string) {
	_, _ = io.WriteString(that.out, strings.Join(parts, "")+"\n")
}
