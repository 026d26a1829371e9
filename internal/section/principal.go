package section

import "math"

// principalMoments performs the closed-form eigen-decomposition of the
// 2x2 symmetric inertia tensor built from the centroidal moments. I1 is
// the major principal moment, I2 the minor, and Angle the rotation in
// degrees from the horizontal (z) axis to the I1 axis. The isotropic case
// (Iz == Iy, Izy == 0) conventionally reports angle 0
func principalMoments(iz, iy, izy float64) PrincipalMoments {
	avg := (iz + iy) / 2
	diff := (iz - iy) / 2
	r := math.Sqrt(diff*diff + izy*izy)

	angle := 0.0
	if diff != 0 || izy != 0 {
		angle = 0.5 * math.Atan2(-2*izy, iz-iy) * 180 / math.Pi
	}

	return PrincipalMoments{
		I1:    avg + r,
		I2:    avg - r,
		Angle: angle,
	}
}
