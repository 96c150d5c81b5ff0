package renderer

// Instanced mesh shader. Locations 2-5 carry the per-instance model matrix
// columns.
const instancedVertexShader = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in mat4 aModel;

uniform mat4 uViewProj;

out vec3 vNormal;

void main() {
    vNormal = mat3(aModel) * aNormal;
    gl_Position = uViewProj * aModel * vec4(aPosition, 1.0);
}
`

const instancedFragmentShader = `#version 410 core
in vec3 vNormal;

uniform vec4 uColor;
uniform vec3 uLightDir;

out vec4 FragColor;

void main() {
    float diffuse = max(dot(normalize(vNormal), -uLightDir), 0.0);
    FragColor = vec4(uColor.rgb * (0.3 + 0.7 * diffuse), uColor.a);
}
`

// Line shader for debug gizmos.
const lineVertexShader = `#version 410 core
layout (location = 0) in vec3 aPosition;

uniform mat4 uViewProj;

void main() {
    gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

const lineFragmentShader = `#version 410 core
uniform vec4 uColor;

out vec4 FragColor;

void main() {
    FragColor = uColor;
}
`
