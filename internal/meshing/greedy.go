package meshing

import "github.com/DrakeOne/voxelcraft-optimized/internal/voxel"

// GreedyMesher funde faces coplanares adjacentes do mesmo tipo de bloco
// em retângulos máximos, reduzindo drasticamente a contagem de vértices
// em terreno com superfícies largas.
//
// Para cada eixo principal d (u e v são os outros dois, em ordem
// cíclica), o volume é varrido plano a plano de -1 até N-1. Cada plano
// gera uma máscara 2D com sinal comparando o voxel de trás (A) com o
// da frente (B) através da fronteira:
//
//	A == B          -> 0 (face interna ou dois vazios: nada a emitir)
//	A sólido        -> +A (face aponta para +d)
//	senão           -> -B (face aponta para -d)
//
// Os dois planos extremos são compartilhados com os chunks vizinhos,
// que os varrem também. Para a costura não emitir quad duplicado, cada
// face pertence ao chunk do voxel sólido que a ancora: +A só vale com A
// dentro do volume (plano -1 fica de fora) e -B só com B dentro (o
// último plano fica de fora).
//
// A máscara é consumida em ordem row-major: cada célula não-nula ancora
// um retângulo que cresce primeiro em largura (u) e depois em altura
// (v), sempre exigindo valor idêntico ao da âncora. As células
// consumidas são zeradas para nunca emitir face duplicada.
type GreedyMesher struct{}

// Name identifica o algoritmo na configuração e no HUD.
func (GreedyMesher) Name() string { return "greedy" }

// Build varre o volume e devolve a malha fundida, ou nil se vazia.
func (GreedyMesher) Build(vol Volume) *MeshData {
	buf := GetMeshBuffer()

	const n = voxel.GridSize
	var mask [n * n]int32
	var x, q [3]int32

	for d := 0; d < 3; d++ {
		u := (d + 1) % 3
		v := (d + 2) % 3
		q = [3]int32{}
		q[d] = 1

		// O plano -1 cobre a fronteira inferior do grid; amostras fora
		// do volume resolvem via vizinho ou Air, então as faces
		// externas nascem aqui sem caso especial.
		for x[d] = -1; x[d] < n; x[d]++ {
			idx := 0
			for x[v] = 0; x[v] < n; x[v]++ {
				for x[u] = 0; x[u] < n; x[u]++ {
					a := vol.Sample(x[0], x[1], x[2])
					b := vol.Sample(x[0]+q[0], x[1]+q[1], x[2]+q[2])
					switch {
					case a == b:
						mask[idx] = 0
					case !a.IsAir():
						// A face +d pertence ao voxel de trás (A); no
						// plano -1 ele vive no vizinho, que a emite na
						// própria varredura.
						if x[d] >= 0 {
							mask[idx] = int32(a)
						} else {
							mask[idx] = 0
						}
					default:
						// A face -d pertence ao voxel da frente (B); no
						// último plano ele é do vizinho.
						if x[d] < n-1 {
							mask[idx] = -int32(b)
						} else {
							mask[idx] = 0
						}
					}
					idx++
				}
			}

			plane := x[d] + 1
			idx = 0
			for j := int32(0); j < n; j++ {
				for i := int32(0); i < n; {
					cur := mask[idx]
					if cur == 0 {
						i++
						idx++
						continue
					}

					// Largura máxima ao longo de u.
					w := int32(1)
					for i+w < n && mask[idx+int(w)] == cur {
						w++
					}

					// Altura máxima: a linha inteira precisa casar.
					h := int32(1)
				loopH:
					for j+h < n {
						for k := int32(0); k < w; k++ {
							if mask[(j+h)*n+i+k] != cur {
								break loopH
							}
						}
						h++
					}

					block := voxel.Block(cur)
					positive := true
					if cur < 0 {
						block = voxel.Block(-cur)
						positive = false
					}
					emitRect(buf, d, positive, plane, i, j, w, h, block)

					// Zera as células consumidas pelo retângulo.
					for dj := int32(0); dj < h; dj++ {
						for di := int32(0); di < w; di++ {
							mask[(j+dj)*n+i+di] = 0
						}
					}

					i += w
					idx += int(w)
				}
			}
		}
	}

	if buf.Geometry.QuadCount() == 0 {
		PutMeshBuffer(buf)
		return nil
	}
	data := buf.Geometry.Clone()
	PutMeshBuffer(buf)
	return &data
}
