// Package detect turns a captured frame into typed, located recruitment tags.
package detect

import (
	"gocv.io/x/gocv"

	"retag/internal/config"
	"retag/pkg/geometry"
)

// tagBoxVertices is the polygon vertex count of a rectangular tag button.
const tagBoxVertices = 4

// DetectTagBoxes finds candidate tag-button rectangles in a grayscale frame.
// The frame is binary-inverse thresholded, contours are extracted with the
// full hierarchy, each contour is approximated to a polygon, and only
// quadrilaterals whose bounding rectangle covers a plausible fraction of the
// frame survive. Near-duplicate boxes are not collapsed here; a box whose
// text fails recognition simply produces no tag downstream.
func DetectTagBoxes(gray gocv.Mat, cfg config.Config) []geometry.RectInt {
	if gray.Empty() {
		return nil
	}

	threshed := gocv.NewMat()
	defer threshed.Close()
	gocv.Threshold(gray, &threshed, float32(cfg.BoxThreshold), 255, gocv.ThresholdBinaryInv)

	contours := gocv.FindContours(threshed, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer contours.Close()

	imgArea := gray.Rows() * gray.Cols()

	var boxes []geometry.RectInt
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		perimeter := gocv.ArcLength(contour, false)
		poly := gocv.ApproxPolyDP(contour, cfg.PolyTolerance*perimeter, true)
		if poly.Size() != tagBoxVertices {
			poly.Close()
			continue
		}
		bounding := gocv.BoundingRect(poly)
		poly.Close()

		box := geometry.RectInt{
			X:      bounding.Min.X,
			Y:      bounding.Min.Y,
			Width:  bounding.Dx(),
			Height: bounding.Dy(),
		}
		if keepBox(box.Area(), imgArea, cfg.MinBoxArea, cfg.MaxBoxArea) {
			boxes = append(boxes, box)
		}
	}
	return boxes
}

// keepBox accepts a candidate whose area lies in [minFrac, maxFrac) of the
// source area. The lower bound rejects noise specks, the upper bound rejects
// oversized contours such as panel borders.
func keepBox(boxArea, imgArea int, minFrac, maxFrac float64) bool {
	if imgArea <= 0 {
		return false
	}
	area := float64(boxArea)
	total := float64(imgArea)
	return area >= minFrac*total && area < maxFrac*total
}
