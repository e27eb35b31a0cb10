package app

// Sprite shader sources. The uf_* uniform names are a wire contract with
// gfx.BatchRenderer and must match gfx.Uniform* exactly.

const spriteVertSrc = `#version 410 core

layout(location = 0) in vec2 in_pos;
layout(location = 1) in vec2 in_txd_pos;

uniform mat4 uf_projection;
uniform vec2 uf_model_pos;
uniform vec2 uf_model_size;

out vec2 va_txd_pos;

void main() {
    gl_Position = uf_projection * vec4(in_pos * uf_model_size + uf_model_pos, 0.0, 1.0);
    va_txd_pos = in_txd_pos;
}
`

const spriteFragSrc = `#version 410 core

uniform sampler2DArray uf_txd_unit;
uniform int uf_txd_array_z_offset;

in vec2 va_txd_pos;
out vec4 out_color;

void main() {
    out_color = texture(uf_txd_unit, vec3(va_txd_pos, uf_txd_array_z_offset));
}
`
