package geom

import "image"

// BresenhamLine returns every pixel from (x0, y0) to (x1, y1), both ends
// included. Only integer arithmetic is used. The error term starts at half the
// dominant delta and is corrected by the dominant delta whenever it goes
// negative, so the result always has max(|dx|, |dy|)+1 points regardless of
// direction.
func BresenhamLine(x0, y0, x1, y1 int) []image.Point {
	dx := Abs(x1 - x0)
	dy := Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	points := make([]image.Point, 0, max(dx, dy)+1)
	x, y := x0, y0
	if dy <= dx {
		err := dx / 2
		for x != x1 {
			points = append(points, image.Pt(x, y))
			err -= dy
			if err < 0 {
				y += sy
				err += dx
			}
			x += sx
		}
	} else {
		err := dy / 2
		for y != y1 {
			points = append(points, image.Pt(x, y))
			err -= dx
			if err < 0 {
				x += sx
				err += dy
			}
			y += sy
		}
	}
	return append(points, image.Pt(x1, y1))
}
