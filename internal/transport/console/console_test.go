package console

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/entity"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBoard(t *testing.T) {
	// Given: X X _ / O O _ / _ _ _
	board := entity.BoardFromRows([3][3]entity.Cell{
		{entity.X, entity.X, entity.Empty},
		{entity.O, entity.O, entity.Empty},
		{entity.Empty, entity.Empty, entity.Empty},
	})

	// When: the board is rendered
	rendered := RenderBoard(board)

	// Then: rows are joined by " | " and divided by dashes
	expected := "X | X |  \n" +
		"----------\n" +
		"O | O |  \n" +
		"----------\n" +
		"  |   |  \n"
	assert.Equal(t, expected, rendered)
}

func TestConsole_ShowIntro(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out).ShowIntro()

	assert.Contains(t, out.String(), "7 | 8 | 9\n----------\n4 | 5 | 6\n----------\n1 | 2 | 3\n")
	assert.Contains(t, out.String(), "Player one is: X")
	assert.Contains(t, out.String(), "Player two is: O")
}

func TestConsole_ReadMove(t *testing.T) {
	t.Run("Prompts the seat and trims the answer", func(t *testing.T) {
		// Given: a console with one line of input
		var out bytes.Buffer
		console := New(strings.NewReader("  5 \n"), &out)

		// When: the second seat is asked for a move
		token, err := console.ReadMove(context.Background(), entity.SecondSeat)

		// Then: the trimmed token is returned after the prompt
		require.NoError(t, err)
		assert.Equal(t, "5", token)
		assert.Contains(t, out.String(), "Player [2], your turn.")
	})

	t.Run("Error when input is closed", func(t *testing.T) {
		console := New(strings.NewReader(""), io.Discard)

		_, err := console.ReadMove(context.Background(), entity.FirstSeat)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Error when context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(strings.NewReader("5\n"), io.Discard).ReadMove(ctx, entity.FirstSeat)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Returns when canceled during a blocked read", func(t *testing.T) {
		// Given: input that never delivers a line
		in, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(50*time.Millisecond, cancel)

		// When: the player is prompted and the context is canceled while waiting
		_, err := New(in, io.Discard).ReadMove(ctx, entity.FirstSeat)

		// Then: the read gives up with the cancellation
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Reads following lines after a canceled read", func(t *testing.T) {
		// Given: a read canceled before any input arrives
		in, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })
		console := New(in, io.Discard)

		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(20*time.Millisecond, cancel)
		_, err := console.ReadMove(ctx, entity.FirstSeat)
		require.ErrorIs(t, err, context.Canceled)

		// When: a line arrives and the next read waits for it
		go func() { _, _ = io.WriteString(writer, "3\n") }()
		token, err := console.ReadMove(context.Background(), entity.FirstSeat)

		// Then: the line is not lost
		require.NoError(t, err)
		assert.Equal(t, "3", token)
	})
}

func TestConsole_ReadGameType(t *testing.T) {
	var out bytes.Buffer
	console := New(strings.NewReader("1\n"), &out)

	token, err := console.ReadGameType(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1", token)
	assert.Contains(t, out.String(), "[2] Computer vs. Computer")
}

func TestConsole_ShowRejectedMove(t *testing.T) {
	t.Run("Occupied square", func(t *testing.T) {
		var out bytes.Buffer
		err := fmt.Errorf("%w: square 5", apperror.ErrCellOccupied)

		New(strings.NewReader(""), &out).ShowRejectedMove(entity.NewBoard(), err)

		assert.Contains(t, out.String(), "square is already taken")
	})

	t.Run("Invalid token", func(t *testing.T) {
		var out bytes.Buffer

		New(strings.NewReader(""), &out).ShowRejectedMove(entity.NewBoard(), apperror.ErrInvalidInputToken)

		assert.Contains(t, out.String(), "Please select a number 1-9.")
	})
}

func TestConsole_ShowResult(t *testing.T) {
	t.Run("Winner", func(t *testing.T) {
		var out bytes.Buffer

		New(strings.NewReader(""), &out).ShowResult(entity.NewBoard(), tictactoe.Won(entity.O), entity.SecondSeat)

		assert.Contains(t, out.String(), "Player [2] is the WINNER!!!")
	})

	t.Run("Draw", func(t *testing.T) {
		var out bytes.Buffer

		New(strings.NewReader(""), &out).ShowResult(entity.NewBoard(), tictactoe.Draw, entity.FirstSeat)

		assert.Contains(t, out.String(), "DRAW!")
	})
}

func TestConsole_ShowDecision(t *testing.T) {
	var out bytes.Buffer
	console := New(strings.NewReader(""), &out)

	console.ShowDecision(entity.Computer)
	console.ShowDecision(entity.Human)

	assert.Contains(t, out.String(), "COMPUTER HAS DECIDED...")
	assert.Contains(t, out.String(), "HUMAN HAS DECIDED...")
}
