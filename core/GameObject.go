package core

// Screen geometry of the calculator LCD, in pixels.
const (
	ScreenWidth  = 320
	ScreenHeight = 240
)

const (
	PaddleWidth  = 4
	PaddleHeight = 48
	PaddleStep   = 2 // 每格移動像素
	PaddleInset  = 4 // 球拍與左右邊界的距離

	PlayerCol = PaddleInset
	AiCol     = ScreenWidth - PaddleInset - PaddleWidth

	// MaxPaddlePos is the lowest top edge a paddle may have.
	MaxPaddlePos = ScreenHeight - PaddleHeight
)

const (
	BallSize   = 3
	BallRadius = 1.0
)

// Paddle is a vertical bar pinned to one column. Pos is its top edge.
type Paddle struct {
	Col int
	Pos int
}

func (p *Paddle) MoveUp() {
	p.Pos -= PaddleStep
	p.clamp()
}

func (p *Paddle) MoveDown() {
	p.Pos += PaddleStep
	p.clamp()
}

// Center is the paddle's vertical midpoint.
func (p *Paddle) Center() int {
	return p.Pos + PaddleHeight/2
}

func (p *Paddle) clamp() {
	if p.Pos < 0 {
		p.Pos = 0
	}
	if p.Pos > MaxPaddlePos {
		p.Pos = MaxPaddlePos
	}
}

func (p *Paddle) Draw(d Display) {
	d.FillRect(p.Col, p.Pos, PaddleWidth, PaddleHeight)
}

type Ball struct {
	X, Y       float64
	VelX, VelY float64
}

func (b *Ball) Move() {
	b.X += b.VelX
	b.Y += b.VelY
}

// Draw fills a BallSize square centered on the truncated position.
func (b *Ball) Draw(d Display) {
	d.FillRect(int(b.X)-BallSize/2, int(b.Y)-BallSize/2, BallSize, BallSize)
}
