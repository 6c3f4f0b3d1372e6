/*
Package geom implements the small pieces of linear algebra needed to fit
local coordinate frames to nucleotide bases: 3D vectors, 3x3 matrices, a
numerically fixed 3x3 singular value decomposition, and optimal
least-squares (Kabsch) superposition of two point sets.

The superposition here is a version of the Kabsch algorithm that is
described in detail here: http://cnx.org/content/m11608/latest/
Unlike a plain RMSD routine, Superpose returns the full rigid-body
transform (rotation plus centroids), since frame fitting needs the
rotation itself and not just the residual.
*/
package geom
